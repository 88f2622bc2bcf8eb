package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SeedRepository interface {
	Create(ctx context.Context, seed *entity.Seed) error
	Update(ctx context.Context, seed *entity.Seed) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Seed, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Seed, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
