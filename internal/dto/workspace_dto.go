package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateWorkspaceResponse struct {
	Id uuid.UUID `json:"id"`
}

type AddMemberRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"omitempty,oneof=owner admin member"`
}

type WorkspaceMemberResponse struct {
	UserId uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

type WorkspaceEventResponse struct {
	Id        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	SeedId    *uuid.UUID             `json:"seed_id,omitempty"`
	UserId    *uuid.UUID             `json:"user_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}
