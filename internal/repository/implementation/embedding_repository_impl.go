package implementation

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/mapper"
	"idea-copilot-be/internal/model"
	"idea-copilot-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmbeddingMapper
}

func NewEmbeddingRepository(db *gorm.DB) contract.EmbeddingRepository {
	return &EmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmbeddingMapper(),
	}
}

func (r *EmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.WorkspaceEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"seed_id", "item_type", "embedding", "metadata", "updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmbeddingRepositoryImpl) DeleteByItem(ctx context.Context, workspaceId, itemId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("workspace_id = ? AND item_id = ?", workspaceId, itemId).
		Delete(&model.WorkspaceEmbedding{}).Error
}

func (r *EmbeddingRepositoryImpl) MatchWorkspace(ctx context.Context, workspaceId uuid.UUID, seedId *uuid.UUID, vector []float32, limit int) ([]*entity.EmbeddingMatch, error) {
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceId)
	if seedId != nil {
		query = query.Where("seed_id = ?", *seedId)
	}

	// Cosine distance via pgvector, closest rows first.
	var models []*model.WorkspaceEmbedding
	err := query.
		Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(vector))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.EmbeddingMatch, len(models))
	for i, m := range models {
		matches[i] = &entity.EmbeddingMatch{
			ItemType: m.ItemType,
			ItemId:   m.ItemId,
			Metadata: map[string]interface{}(m.Metadata),
		}
	}
	return matches, nil
}
