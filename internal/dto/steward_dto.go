package dto

import (
	"github.com/google/uuid"

	"idea-copilot-be/pkg/ai/steward"
)

type SeedStewardRequest struct {
	WorkspaceId uuid.UUID `json:"workspace_id" validate:"required"`
	SeedId      uuid.UUID `json:"seed_id" validate:"required"`
}

type SeedStewardResponse struct {
	Suggestions *steward.Suggestions `json:"suggestions"`
}
