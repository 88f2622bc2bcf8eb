package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSeedRequest struct {
	WorkspaceId  uuid.UUID `json:"workspace_id" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Summary      string    `json:"summary"`
	WhyItMatters string    `json:"why_it_matters"`
}

type CreateSeedResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateSeedRequest struct {
	Id           uuid.UUID
	Title        string `json:"title" validate:"required"`
	Summary      string `json:"summary"`
	WhyItMatters string `json:"why_it_matters"`
	Status       string `json:"status" validate:"omitempty,oneof=active paused archived"`
}

type UpdateSeedResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowSeedResponse struct {
	Id           uuid.UUID  `json:"id"`
	WorkspaceId  uuid.UUID  `json:"workspace_id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	WhyItMatters string     `json:"why_it_matters"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
