package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateExperimentRequest struct {
	WorkspaceId uuid.UUID  `json:"workspace_id" validate:"required"`
	SeedId      *uuid.UUID `json:"seed_id"`
	Title       string     `json:"title" validate:"required"`
	Hypothesis  string     `json:"hypothesis"`
	Plan        string     `json:"plan"`
}

type CreateExperimentResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateExperimentStatusRequest struct {
	Id            uuid.UUID
	Status        string `json:"status" validate:"required,oneof=proposed planned running done abandoned"`
	ResultSummary string `json:"result_summary"`
}

type UpdateExperimentStatusResponse struct {
	Id uuid.UUID `json:"id"`
}

type ExperimentResponse struct {
	Id            uuid.UUID  `json:"id"`
	SeedId        *uuid.UUID `json:"seed_id,omitempty"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	Hypothesis    string     `json:"hypothesis,omitempty"`
	Plan          string     `json:"plan,omitempty"`
	ResultSummary string     `json:"result_summary,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
