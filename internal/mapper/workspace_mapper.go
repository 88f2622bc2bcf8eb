package mapper

import (
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/model"
)

type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) ToEntity(w *model.Workspace) *entity.Workspace {
	if w == nil {
		return nil
	}

	return &entity.Workspace{
		Id:        w.Id,
		Name:      w.Name,
		CreatedBy: w.CreatedBy,
		CreatedAt: w.CreatedAt,
	}
}

func (m *WorkspaceMapper) ToModel(w *entity.Workspace) *model.Workspace {
	if w == nil {
		return nil
	}

	return &model.Workspace{
		Id:        w.Id,
		Name:      w.Name,
		CreatedBy: w.CreatedBy,
		CreatedAt: w.CreatedAt,
	}
}

func (m *WorkspaceMapper) MemberToEntity(wm *model.WorkspaceMember) *entity.WorkspaceMember {
	if wm == nil {
		return nil
	}

	return &entity.WorkspaceMember{
		WorkspaceId: wm.WorkspaceId,
		UserId:      wm.UserId,
		Role:        wm.Role,
		CreatedAt:   wm.CreatedAt,
	}
}

func (m *WorkspaceMapper) MemberToModel(wm *entity.WorkspaceMember) *model.WorkspaceMember {
	if wm == nil {
		return nil
	}

	return &model.WorkspaceMember{
		WorkspaceId: wm.WorkspaceId,
		UserId:      wm.UserId,
		Role:        wm.Role,
		CreatedAt:   wm.CreatedAt,
	}
}
