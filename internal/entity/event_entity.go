package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is the append-only activity log of a workspace.
type Event struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	UserId      *uuid.UUID
	SeedId      *uuid.UUID
	Type        string
	Payload     map[string]interface{}
	CreatedAt   time.Time
}
