package service

import (
	"context"
	"time"

	"idea-copilot-be/internal/constant"
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISeedService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSeedRequest) (*dto.CreateSeedResponse, error)
	Show(ctx context.Context, userId uuid.UUID, workspaceId, id uuid.UUID) (*dto.ShowSeedResponse, error)
	Update(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.UpdateSeedRequest) (*dto.UpdateSeedResponse, error)
	List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.ShowSeedResponse, error)
}

type seedService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
}

func NewSeedService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
) ISeedService {
	return &seedService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
	}
}

func (s *seedService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSeedRequest) (*dto.CreateSeedResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	seed := entity.Seed{
		Id:           uuid.New(),
		WorkspaceId:  req.WorkspaceId,
		Title:        req.Title,
		Summary:      req.Summary,
		WhyItMatters: req.WhyItMatters,
		Status:       "active",
		CreatedBy:    userId,
		CreatedAt:    time.Now(),
	}
	if err := uow.SeedRepository().Create(ctx, &seed); err != nil {
		return nil, err
	}

	s.recordSeedEvent(ctx, constant.EventSeedCreated, &seed, userId)

	return &dto.CreateSeedResponse{Id: seed.Id}, nil
}

func (s *seedService) Show(ctx context.Context, userId uuid.UUID, workspaceId, id uuid.UUID) (*dto.ShowSeedResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	seed, err := uow.SeedRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
	)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, ErrSeedNotFound
	}

	return seedToResponse(seed), nil
}

func (s *seedService) Update(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.UpdateSeedRequest) (*dto.UpdateSeedResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	seed, err := uow.SeedRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
	)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, ErrSeedNotFound
	}

	now := time.Now()
	seed.Title = req.Title
	seed.Summary = req.Summary
	seed.WhyItMatters = req.WhyItMatters
	if req.Status != "" {
		seed.Status = req.Status
	}
	seed.UpdatedAt = &now

	if err := uow.SeedRepository().Update(ctx, seed); err != nil {
		return nil, err
	}

	s.recordSeedEvent(ctx, constant.EventSeedUpdated, seed, userId)

	return &dto.UpdateSeedResponse{Id: seed.Id}, nil
}

func (s *seedService) List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.ShowSeedResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	seeds, err := uow.SeedRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowSeedResponse, len(seeds))
	for i, seed := range seeds {
		res[i] = seedToResponse(seed)
	}
	return res, nil
}

func (s *seedService) recordSeedEvent(ctx context.Context, eventType string, seed *entity.Seed, userId uuid.UUID) {
	event := entity.Event{
		WorkspaceId: seed.WorkspaceId,
		SeedId:      &seed.Id,
		UserId:      &userId,
		Type:        eventType,
		Payload: map[string]interface{}{
			"seed_id": seed.Id.String(),
			"title":   seed.Title,
		},
	}
	// Event logging is auxiliary; the seed write already succeeded.
	_ = s.eventService.Record(ctx, &event)
}

func seedToResponse(seed *entity.Seed) *dto.ShowSeedResponse {
	return &dto.ShowSeedResponse{
		Id:           seed.Id,
		WorkspaceId:  seed.WorkspaceId,
		Title:        seed.Title,
		Summary:      seed.Summary,
		WhyItMatters: seed.WhyItMatters,
		Status:       seed.Status,
		CreatedAt:    seed.CreatedAt,
		UpdatedAt:    seed.UpdatedAt,
	}
}
