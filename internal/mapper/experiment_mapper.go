package mapper

import (
	"time"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"
)

type ExperimentMapper struct{}

func NewExperimentMapper() *ExperimentMapper {
	return &ExperimentMapper{}
}

func (m *ExperimentMapper) ToEntity(e *model.Experiment) *entity.Experiment {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Experiment{
		Id:            e.Id,
		WorkspaceId:   e.WorkspaceId,
		SeedId:        e.SeedId,
		Title:         e.Title,
		Status:        e.Status,
		Hypothesis:    e.Hypothesis,
		Plan:          e.Plan,
		ResultSummary: e.ResultSummary,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ExperimentMapper) ToModel(e *entity.Experiment) *model.Experiment {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Experiment{
		Id:            e.Id,
		WorkspaceId:   e.WorkspaceId,
		SeedId:        e.SeedId,
		Title:         e.Title,
		Status:        e.Status,
		Hypothesis:    e.Hypothesis,
		Plan:          e.Plan,
		ResultSummary: e.ResultSummary,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ExperimentMapper) ToEntities(experiments []*model.Experiment) []*entity.Experiment {
	entities := make([]*entity.Experiment, len(experiments))
	for i, e := range experiments {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
