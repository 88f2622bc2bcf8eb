package mapper

import (
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"
)

type PrincipleMapper struct{}

func NewPrincipleMapper() *PrincipleMapper {
	return &PrincipleMapper{}
}

func (m *PrincipleMapper) ToEntity(p *model.Principle) *entity.Principle {
	if p == nil {
		return nil
	}

	return &entity.Principle{
		Id:          p.Id,
		WorkspaceId: p.WorkspaceId,
		SeedId:      p.SeedId,
		Statement:   p.Statement,
		Category:    p.Category,
		Active:      p.Active,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PrincipleMapper) ToModel(p *entity.Principle) *model.Principle {
	if p == nil {
		return nil
	}

	return &model.Principle{
		Id:          p.Id,
		WorkspaceId: p.WorkspaceId,
		SeedId:      p.SeedId,
		Statement:   p.Statement,
		Category:    p.Category,
		Active:      p.Active,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PrincipleMapper) ToEntities(principles []*model.Principle) []*entity.Principle {
	entities := make([]*entity.Principle, len(principles))
	for i, p := range principles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
