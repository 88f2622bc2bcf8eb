package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Event struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID         `gorm:"type:uuid;not null;index"`
	SeedId      *uuid.UUID        `gorm:"type:uuid;index"`
	UserId      *uuid.UUID        `gorm:"type:uuid"`
	Type        string            `gorm:"type:varchar(64);not null;index"`
	Payload     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"default:now();not null;index"`
}

func (Event) TableName() string {
	return "events"
}
