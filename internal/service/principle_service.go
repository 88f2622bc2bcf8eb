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

type IPrincipleService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePrincipleRequest) (*dto.CreatePrincipleResponse, error)
	List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.PrincipleResponse, error)
}

type principleService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewPrincipleService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
	publisherService IPublisherService,
	log logger.ILogger,
) IPrincipleService {
	return &principleService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *principleService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePrincipleRequest) (*dto.CreatePrincipleResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	principle := entity.Principle{
		Id:          uuid.New(),
		WorkspaceId: req.WorkspaceId,
		SeedId:      req.SeedId,
		Statement:   req.Statement,
		Category:    req.Category,
		Active:      true,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.PrincipleRepository().Create(ctx, &principle); err != nil {
		return nil, err
	}

	event := entity.Event{
		WorkspaceId: principle.WorkspaceId,
		SeedId:      principle.SeedId,
		UserId:      &userId,
		Type:        constant.EventPrincipleCreated,
		Payload: map[string]interface{}{
			"principle_id": principle.Id.String(),
			"statement":    principle.Statement,
		},
	}
	_ = s.eventService.Record(ctx, &event)

	queueItemIndexing(ctx, s.publisherService, s.logger, dto.PublishEmbedItemMessage{
		WorkspaceId: principle.WorkspaceId,
		SeedId:      principle.SeedId,
		ItemType:    constant.ItemTypePrinciple,
		ItemId:      principle.Id,
	})

	return &dto.CreatePrincipleResponse{Id: principle.Id}, nil
}

func (s *principleService) List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.PrincipleResponse, error) {
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
	principles, err := uow.PrincipleRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PrincipleResponse, len(principles))
	for i, principle := range principles {
		res[i] = &dto.PrincipleResponse{
			Id:        principle.Id,
			SeedId:    principle.SeedId,
			Statement: principle.Statement,
			Category:  principle.Category,
			Active:    principle.Active,
			CreatedAt: principle.CreatedAt,
		}
	}
	return res, nil
}
