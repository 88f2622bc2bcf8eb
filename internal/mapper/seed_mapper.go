package mapper

import (
	"time"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"
)

type SeedMapper struct{}

func NewSeedMapper() *SeedMapper {
	return &SeedMapper{}
}

func (m *SeedMapper) ToEntity(s *model.Seed) *entity.Seed {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Seed{
		Id:           s.Id,
		WorkspaceId:  s.WorkspaceId,
		Title:        s.Title,
		Summary:      s.Summary,
		WhyItMatters: s.WhyItMatters,
		Status:       s.Status,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *SeedMapper) ToModel(s *entity.Seed) *model.Seed {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Seed{
		Id:           s.Id,
		WorkspaceId:  s.WorkspaceId,
		Title:        s.Title,
		Summary:      s.Summary,
		WhyItMatters: s.WhyItMatters,
		Status:       s.Status,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *SeedMapper) ToEntities(seeds []*model.Seed) []*entity.Seed {
	entities := make([]*entity.Seed, len(seeds))
	for i, s := range seeds {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
