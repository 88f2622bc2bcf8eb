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

type IKnowledgeService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeItemRequest) (*dto.CreateKnowledgeItemResponse, error)
	List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.KnowledgeItemResponse, error)
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
	publisherService IPublisherService,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *knowledgeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeItemRequest) (*dto.CreateKnowledgeItemResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	itemType := req.Type
	if itemType == "" {
		itemType = "note"
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item := entity.KnowledgeItem{
		Id:          uuid.New(),
		WorkspaceId: req.WorkspaceId,
		SeedId:      req.SeedId,
		Title:       req.Title,
		Content:     req.Content,
		Type:        itemType,
		SourceURL:   req.SourceURL,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.KnowledgeItemRepository().Create(ctx, &item); err != nil {
		return nil, err
	}

	event := entity.Event{
		WorkspaceId: item.WorkspaceId,
		SeedId:      item.SeedId,
		UserId:      &userId,
		Type:        constant.EventKnowledgeItemCreated,
		Payload: map[string]interface{}{
			"item_id": item.Id.String(),
			"title":   item.Title,
		},
	}
	_ = s.eventService.Record(ctx, &event)

	queueItemIndexing(ctx, s.publisherService, s.logger, dto.PublishEmbedItemMessage{
		WorkspaceId: item.WorkspaceId,
		SeedId:      item.SeedId,
		ItemType:    constant.ItemTypeKnowledge,
		ItemId:      item.Id,
	})

	return &dto.CreateKnowledgeItemResponse{Id: item.Id}, nil
}

func (s *knowledgeService) List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.KnowledgeItemResponse, error) {
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
	items, err := uow.KnowledgeItemRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeItemResponse, len(items))
	for i, item := range items {
		res[i] = &dto.KnowledgeItemResponse{
			Id:        item.Id,
			SeedId:    item.SeedId,
			Title:     item.Title,
			Content:   item.Content,
			Type:      item.Type,
			SourceURL: item.SourceURL,
			CreatedAt: item.CreatedAt,
		}
	}
	return res, nil
}
