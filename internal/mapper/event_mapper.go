package mapper

import (
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"

	"gorm.io/datatypes"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}

	return &entity.Event{
		Id:          e.Id,
		WorkspaceId: e.WorkspaceId,
		UserId:      e.UserId,
		SeedId:      e.SeedId,
		Type:        e.Type,
		Payload:     map[string]interface{}(e.Payload),
		CreatedAt:   e.CreatedAt,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}

	return &model.Event{
		Id:          e.Id,
		WorkspaceId: e.WorkspaceId,
		UserId:      e.UserId,
		SeedId:      e.SeedId,
		Type:        e.Type,
		Payload:     datatypes.JSONMap(e.Payload),
		CreatedAt:   e.CreatedAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
