package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeItemRepository interface {
	Create(ctx context.Context, item *entity.KnowledgeItem) error
	Update(ctx context.Context, item *entity.KnowledgeItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeItem, error)
}
