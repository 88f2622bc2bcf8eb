package entity

import (
	"time"

	"github.com/google/uuid"
)

type Principle struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	SeedId      *uuid.UUID // nil = workspace-level principle
	Statement   string
	Category    string
	Active      bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}
