package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Principle struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID      `gorm:"type:uuid;not null;index"`
	SeedId      *uuid.UUID     `gorm:"type:uuid;index"`
	Statement   string         `gorm:"type:text;not null"`
	Category    string         `gorm:"type:varchar(64)"`
	Active      bool           `gorm:"not null;default:true"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Principle) TableName() string {
	return "principles"
}
