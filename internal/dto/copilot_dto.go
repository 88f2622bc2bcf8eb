package dto

import (
	"github.com/google/uuid"

	"idea-copilot-be/pkg/ai/copilot"
)

type CopilotMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type CopilotQueryRequest struct {
	WorkspaceId uuid.UUID        `json:"workspace_id" validate:"required"`
	SeedId      *uuid.UUID       `json:"seed_id"`
	Mode        string           `json:"mode" validate:"required"`
	Lens        string           `json:"lens"`
	Messages    []CopilotMessage `json:"messages" validate:"required,min=1,dive"`
}

type CopilotSource struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Ref   string `json:"ref"`
}

type CopilotQueryResponse struct {
	Answer     string                        `json:"answer"`
	Structured *copilot.StructuredSuggestion `json:"structured,omitempty"`
	Sources    []CopilotSource               `json:"sources"`
}
