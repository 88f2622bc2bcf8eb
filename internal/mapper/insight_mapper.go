package mapper

import (
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"
)

type InsightMapper struct{}

func NewInsightMapper() *InsightMapper {
	return &InsightMapper{}
}

func (m *InsightMapper) ToEntity(in *model.Insight) *entity.Insight {
	if in == nil {
		return nil
	}

	return &entity.Insight{
		Id:          in.Id,
		WorkspaceId: in.WorkspaceId,
		SeedId:      in.SeedId,
		Summary:     in.Summary,
		Details:     in.Details,
		Confidence:  in.Confidence,
		SourceType:  in.SourceType,
		SourceId:    in.SourceId,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   in.CreatedAt,
	}
}

func (m *InsightMapper) ToModel(in *entity.Insight) *model.Insight {
	if in == nil {
		return nil
	}

	return &model.Insight{
		Id:          in.Id,
		WorkspaceId: in.WorkspaceId,
		SeedId:      in.SeedId,
		Summary:     in.Summary,
		Details:     in.Details,
		Confidence:  in.Confidence,
		SourceType:  in.SourceType,
		SourceId:    in.SourceId,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   in.CreatedAt,
	}
}

func (m *InsightMapper) ToEntities(insights []*model.Insight) []*entity.Insight {
	entities := make([]*entity.Insight, len(insights))
	for i, in := range insights {
		entities[i] = m.ToEntity(in)
	}
	return entities
}
