package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InsightRepository interface {
	Create(ctx context.Context, insight *entity.Insight) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Insight, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error)
}
