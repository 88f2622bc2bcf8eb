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

type IExperimentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateExperimentRequest) (*dto.CreateExperimentResponse, error)
	UpdateStatus(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.UpdateExperimentStatusRequest) (*dto.UpdateExperimentStatusResponse, error)
	List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.ExperimentResponse, error)
}

type experimentService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewExperimentService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
	publisherService IPublisherService,
	log logger.ILogger,
) IExperimentService {
	return &experimentService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *experimentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateExperimentRequest) (*dto.CreateExperimentResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	experiment := entity.Experiment{
		Id:          uuid.New(),
		WorkspaceId: req.WorkspaceId,
		SeedId:      req.SeedId,
		Title:       req.Title,
		Status:      "proposed",
		Hypothesis:  req.Hypothesis,
		Plan:        req.Plan,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.ExperimentRepository().Create(ctx, &experiment); err != nil {
		return nil, err
	}

	event := entity.Event{
		WorkspaceId: experiment.WorkspaceId,
		SeedId:      experiment.SeedId,
		UserId:      &userId,
		Type:        constant.EventExperimentCreated,
		Payload: map[string]interface{}{
			"experiment_id": experiment.Id.String(),
			"title":         experiment.Title,
		},
	}
	_ = s.eventService.Record(ctx, &event)

	queueItemIndexing(ctx, s.publisherService, s.logger, dto.PublishEmbedItemMessage{
		WorkspaceId: experiment.WorkspaceId,
		SeedId:      experiment.SeedId,
		ItemType:    constant.ItemTypeExperiment,
		ItemId:      experiment.Id,
	})

	return &dto.CreateExperimentResponse{Id: experiment.Id}, nil
}

func (s *experimentService) UpdateStatus(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.UpdateExperimentStatusRequest) (*dto.UpdateExperimentStatusResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	experiment, err := uow.ExperimentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
	)
	if err != nil {
		return nil, err
	}
	if experiment == nil {
		return nil, ErrItemNotFound
	}

	now := time.Now()
	experiment.Status = req.Status
	if req.ResultSummary != "" {
		experiment.ResultSummary = req.ResultSummary
	}
	experiment.UpdatedAt = &now

	if err := uow.ExperimentRepository().Update(ctx, experiment); err != nil {
		return nil, err
	}

	event := entity.Event{
		WorkspaceId: experiment.WorkspaceId,
		SeedId:      experiment.SeedId,
		UserId:      &userId,
		Type:        constant.EventExperimentStatusMoved,
		Payload: map[string]interface{}{
			"experiment_id": experiment.Id.String(),
			"status":        experiment.Status,
		},
	}
	_ = s.eventService.Record(ctx, &event)

	// Re-index: a recorded result changes what the experiment text says.
	queueItemIndexing(ctx, s.publisherService, s.logger, dto.PublishEmbedItemMessage{
		WorkspaceId: experiment.WorkspaceId,
		SeedId:      experiment.SeedId,
		ItemType:    constant.ItemTypeExperiment,
		ItemId:      experiment.Id,
	})

	return &dto.UpdateExperimentStatusResponse{Id: experiment.Id}, nil
}

func (s *experimentService) List(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, seedId *uuid.UUID) ([]*dto.ExperimentResponse, error) {
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
	experiments, err := uow.ExperimentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ExperimentResponse, len(experiments))
	for i, experiment := range experiments {
		res[i] = &dto.ExperimentResponse{
			Id:            experiment.Id,
			SeedId:        experiment.SeedId,
			Title:         experiment.Title,
			Status:        experiment.Status,
			Hypothesis:    experiment.Hypothesis,
			Plan:          experiment.Plan,
			ResultSummary: experiment.ResultSummary,
			CreatedAt:     experiment.CreatedAt,
		}
	}
	return res, nil
}
