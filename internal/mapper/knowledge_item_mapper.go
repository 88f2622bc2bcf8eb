package mapper

import (
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"
)

type KnowledgeItemMapper struct{}

func NewKnowledgeItemMapper() *KnowledgeItemMapper {
	return &KnowledgeItemMapper{}
}

func (m *KnowledgeItemMapper) ToEntity(k *model.KnowledgeItem) *entity.KnowledgeItem {
	if k == nil {
		return nil
	}

	return &entity.KnowledgeItem{
		Id:          k.Id,
		WorkspaceId: k.WorkspaceId,
		SeedId:      k.SeedId,
		Title:       k.Title,
		Content:     k.Content,
		Type:        k.Type,
		SourceURL:   k.SourceURL,
		CreatedBy:   k.CreatedBy,
		CreatedAt:   k.CreatedAt,
	}
}

func (m *KnowledgeItemMapper) ToModel(k *entity.KnowledgeItem) *model.KnowledgeItem {
	if k == nil {
		return nil
	}

	return &model.KnowledgeItem{
		Id:          k.Id,
		WorkspaceId: k.WorkspaceId,
		SeedId:      k.SeedId,
		Title:       k.Title,
		Content:     k.Content,
		Type:        k.Type,
		SourceURL:   k.SourceURL,
		CreatedBy:   k.CreatedBy,
		CreatedAt:   k.CreatedAt,
	}
}

func (m *KnowledgeItemMapper) ToEntities(items []*model.KnowledgeItem) []*entity.KnowledgeItem {
	entities := make([]*entity.KnowledgeItem, len(items))
	for i, k := range items {
		entities[i] = m.ToEntity(k)
	}
	return entities
}
