package contract

import (
	"context"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *entity.Workspace) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workspace, error)
	AddMember(ctx context.Context, member *entity.WorkspaceMember) error
	IsMember(ctx context.Context, workspaceId, userId uuid.UUID) (bool, error)
	FindMembers(ctx context.Context, workspaceId uuid.UUID) ([]*entity.WorkspaceMember, error)
}
