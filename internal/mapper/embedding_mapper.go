package mapper

import (
	"time"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type EmbeddingMapper struct{}

func NewEmbeddingMapper() *EmbeddingMapper {
	return &EmbeddingMapper{}
}

func (m *EmbeddingMapper) ToEntity(we *model.WorkspaceEmbedding) *entity.WorkspaceEmbedding {
	if we == nil {
		return nil
	}

	var updatedAt *time.Time
	if !we.UpdatedAt.IsZero() {
		t := we.UpdatedAt
		updatedAt = &t
	}

	return &entity.WorkspaceEmbedding{
		Id:          we.Id,
		WorkspaceId: we.WorkspaceId,
		SeedId:      we.SeedId,
		ItemType:    we.ItemType,
		ItemId:      we.ItemId,
		Vector:      we.Embedding.Slice(),
		Metadata:    map[string]interface{}(we.Metadata),
		CreatedAt:   we.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *EmbeddingMapper) ToModel(we *entity.WorkspaceEmbedding) *model.WorkspaceEmbedding {
	if we == nil {
		return nil
	}

	var updatedAt time.Time
	if we.UpdatedAt != nil {
		updatedAt = *we.UpdatedAt
	}

	return &model.WorkspaceEmbedding{
		Id:          we.Id,
		WorkspaceId: we.WorkspaceId,
		SeedId:      we.SeedId,
		ItemType:    we.ItemType,
		ItemId:      we.ItemId,
		Embedding:   pgvector.NewVector(we.Vector),
		Metadata:    datatypes.JSONMap(we.Metadata),
		CreatedAt:   we.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
