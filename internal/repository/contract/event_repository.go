package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
