package service

import (
	"context"
	"time"

	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/memory"
	"idea-copilot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.CreateWorkspaceResponse, error)
	AddMember(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.AddMemberRequest) error
	// VerifyMembership returns ErrNotMember unless userId belongs to the
	// workspace. Recent checks are served from an in-process cache.
	VerifyMembership(ctx context.Context, workspaceId, userId uuid.UUID) error
	ListMembers(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.WorkspaceMemberResponse, error)
	ListEvents(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, limit int) ([]*dto.WorkspaceEventResponse, error)
}

type workspaceService struct {
	uowFactory      unitofwork.RepositoryFactory
	membershipCache *memory.MembershipCache
	eventService    IEventService
}

func NewWorkspaceService(
	uowFactory unitofwork.RepositoryFactory,
	membershipCache *memory.MembershipCache,
	eventService IEventService,
) IWorkspaceService {
	return &workspaceService{
		uowFactory:      uowFactory,
		membershipCache: membershipCache,
		eventService:    eventService,
	}
}

func (s *workspaceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.CreateWorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace := entity.Workspace{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedBy: userId,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WorkspaceRepository().Create(ctx, &workspace); err != nil {
		return nil, err
	}

	member := entity.WorkspaceMember{
		WorkspaceId: workspace.Id,
		UserId:      userId,
		Role:        "owner",
		CreatedAt:   time.Now(),
	}
	if err := uow.WorkspaceRepository().AddMember(ctx, &member); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.membershipCache.Set(workspace.Id, userId, true)

	return &dto.CreateWorkspaceResponse{Id: workspace.Id}, nil
}

func (s *workspaceService) AddMember(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.AddMemberRequest) error {
	if err := s.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	member := entity.WorkspaceMember{
		WorkspaceId: workspaceId,
		UserId:      req.UserId,
		Role:        role,
		CreatedAt:   time.Now(),
	}
	if err := uow.WorkspaceRepository().AddMember(ctx, &member); err != nil {
		return err
	}

	s.membershipCache.Set(workspaceId, req.UserId, true)
	return nil
}

func (s *workspaceService) VerifyMembership(ctx context.Context, workspaceId, userId uuid.UUID) error {
	if isMember, cached := s.membershipCache.Get(workspaceId, userId); cached {
		if !isMember {
			return ErrNotMember
		}
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	isMember, err := uow.WorkspaceRepository().IsMember(ctx, workspaceId, userId)
	if err != nil {
		return err
	}

	s.membershipCache.Set(workspaceId, userId, isMember)
	if !isMember {
		return ErrNotMember
	}
	return nil
}

func (s *workspaceService) ListMembers(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.WorkspaceMemberResponse, error) {
	if err := s.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.WorkspaceRepository().FindMembers(ctx, workspaceId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.WorkspaceMemberResponse, len(members))
	for i, member := range members {
		res[i] = &dto.WorkspaceMemberResponse{
			UserId: member.UserId,
			Role:   member.Role,
		}
	}
	return res, nil
}

func (s *workspaceService) ListEvents(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, limit int) ([]*dto.WorkspaceEventResponse, error) {
	if err := s.VerifyMembership(ctx, workspaceId, userId); err != nil {
		return nil, err
	}

	eventList, err := s.eventService.List(ctx, workspaceId, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.WorkspaceEventResponse, len(eventList))
	for i, event := range eventList {
		res[i] = &dto.WorkspaceEventResponse{
			Id:        event.Id,
			Type:      event.Type,
			SeedId:    event.SeedId,
			UserId:    event.UserId,
			Payload:   event.Payload,
			CreatedAt: event.CreatedAt,
		}
	}
	return res, nil
}
