package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInsightRequest struct {
	WorkspaceId uuid.UUID  `json:"workspace_id" validate:"required"`
	SeedId      *uuid.UUID `json:"seed_id"`
	Summary     string     `json:"summary" validate:"required"`
	Details     string     `json:"details"`
	Confidence  *float64   `json:"confidence" validate:"omitempty,gte=-100,lte=100"`
}

type CreateInsightResponse struct {
	Id uuid.UUID `json:"id"`
}

type InsightResponse struct {
	Id         uuid.UUID  `json:"id"`
	SeedId     *uuid.UUID `json:"seed_id,omitempty"`
	Summary    string     `json:"summary"`
	Details    string     `json:"details,omitempty"`
	Confidence *float64   `json:"confidence,omitempty"`
	SourceType string     `json:"source_type,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
