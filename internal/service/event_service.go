package service

import (
	"context"
	"time"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/pkg/events"
	pktNats "idea-copilot-be/pkg/nats"

	"github.com/google/uuid"
)

type IEventService interface {
	// Record appends the event to the workspace log and mirrors it onto
	// the NATS bus. Bus failures are logged, never returned.
	Record(ctx context.Context, event *entity.Event) error
	List(ctx context.Context, workspaceId uuid.UUID, limit int) ([]*entity.Event, error)
}

type eventService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewEventService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IEventService {
	return &eventService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *eventService) Record(ctx context.Context, event *entity.Event) error {
	if event.Id == uuid.Nil {
		event.Id = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Create(ctx, event); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NewWorkspaceEvent(event.Type, event.WorkspaceId, event.Payload)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("EventService", "Failed to publish event to bus", map[string]interface{}{
				"event_type": event.Type,
				"error":      err.Error(),
			})
		}
	}

	return nil
}

func (s *eventService) List(ctx context.Context, workspaceId uuid.UUID, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EventRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
}
