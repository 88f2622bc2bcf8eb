package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PrincipleRepository interface {
	Create(ctx context.Context, principle *entity.Principle) error
	Update(ctx context.Context, principle *entity.Principle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Principle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Principle, error)
}
