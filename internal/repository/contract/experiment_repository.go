package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExperimentRepository interface {
	Create(ctx context.Context, experiment *entity.Experiment) error
	Update(ctx context.Context, experiment *entity.Experiment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error)
}
