package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKnowledgeItemRequest struct {
	WorkspaceId uuid.UUID  `json:"workspace_id" validate:"required"`
	SeedId      *uuid.UUID `json:"seed_id"`
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content"`
	Type        string     `json:"type" validate:"omitempty,oneof=note link reference"`
	SourceURL   string     `json:"source_url" validate:"omitempty,url"`
}

type CreateKnowledgeItemResponse struct {
	Id uuid.UUID `json:"id"`
}

type KnowledgeItemResponse struct {
	Id        uuid.UUID  `json:"id"`
	SeedId    *uuid.UUID `json:"seed_id,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	SourceURL string     `json:"source_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
