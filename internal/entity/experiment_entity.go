package entity

import (
	"time"

	"github.com/google/uuid"
)

type Experiment struct {
	Id            uuid.UUID
	WorkspaceId   uuid.UUID
	SeedId        *uuid.UUID
	Title         string
	Status        string // "planned", "running", "done", "abandoned"
	Hypothesis    string
	Plan          string
	ResultSummary string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
