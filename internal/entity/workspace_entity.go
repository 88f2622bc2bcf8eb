package entity

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	Id        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

type WorkspaceMember struct {
	WorkspaceId uuid.UUID
	UserId      uuid.UUID
	Role        string // "owner", "admin", "member"
	CreatedAt   time.Time
}
