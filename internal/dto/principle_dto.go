package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePrincipleRequest struct {
	WorkspaceId uuid.UUID  `json:"workspace_id" validate:"required"`
	SeedId      *uuid.UUID `json:"seed_id"`
	Statement   string     `json:"statement" validate:"required"`
	Category    string     `json:"category"`
}

type CreatePrincipleResponse struct {
	Id uuid.UUID `json:"id"`
}

type PrincipleResponse struct {
	Id        uuid.UUID  `json:"id"`
	SeedId    *uuid.UUID `json:"seed_id,omitempty"`
	Statement string     `json:"statement"`
	Category  string     `json:"category,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}
