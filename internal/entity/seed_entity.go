package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seed is a tracked idea owned by a workspace.
type Seed struct {
	Id           uuid.UUID
	WorkspaceId  uuid.UUID
	Title        string
	Summary      string
	WhyItMatters string
	Status       string
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
