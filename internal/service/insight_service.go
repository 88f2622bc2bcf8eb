package service

import (
	"context"
	"time"

	"idea-copilot-be/internal/constant"
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IInsightService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInsightRequest) (*dto.CreateInsightResponse, error)
	List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.InsightResponse, error)
}

type insightService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewInsightService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
	publisherService IPublisherService,
	log logger.ILogger,
) IInsightService {
	return &insightService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *insightService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInsightRequest) (*dto.CreateInsightResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	insight := entity.Insight{
		Id:          uuid.New(),
		WorkspaceId: req.WorkspaceId,
		SeedId:      req.SeedId,
		Summary:     req.Summary,
		Details:     req.Details,
		Confidence:  req.Confidence,
		SourceType:  "manual",
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.InsightRepository().Create(ctx, &insight); err != nil {
		return nil, err
	}

	event := entity.Event{
		WorkspaceId: insight.WorkspaceId,
		SeedId:      insight.SeedId,
		UserId:      &userId,
		Type:        constant.EventInsightCreated,
		Payload: map[string]interface{}{
			"insight_id": insight.Id.String(),
			"summary":    insight.Summary,
		},
	}
	_ = s.eventService.Record(ctx, &event)

	queueItemIndexing(ctx, s.publisherService, s.logger, dto.PublishEmbedItemMessage{
		WorkspaceId: insight.WorkspaceId,
		SeedId:      insight.SeedId,
		ItemType:    constant.ItemTypeInsight,
		ItemId:      insight.Id,
	})

	return &dto.CreateInsightResponse{Id: insight.Id}, nil
}

func (s *insightService) List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.InsightResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if seedId != nil {
		specs = append(specs, specification.BySeedID{SeedID: *seedId})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	insights, err := uow.InsightRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.InsightResponse, len(insights))
	for i, insight := range insights {
		res[i] = &dto.InsightResponse{
			Id:         insight.Id,
			SeedId:     insight.SeedId,
			Summary:    insight.Summary,
			Details:    insight.Details,
			Confidence: insight.Confidence,
			SourceType: insight.SourceType,
			CreatedAt:  insight.CreatedAt,
		}
	}
	return res, nil
}
