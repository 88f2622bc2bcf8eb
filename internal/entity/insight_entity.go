package entity

import (
	"time"

	"github.com/google/uuid"
)

type Insight struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	SeedId      *uuid.UUID
	Summary     string
	Details     string
	Confidence  *float64
	SourceType  string // "copilot", "steward", "manual"
	SourceId    *uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}
