package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeItem struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	SeedId      *uuid.UUID
	Title       string
	Content     string
	Type        string // "note", "link", "reference"
	SourceURL   string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}
