package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Seed struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Summary      string         `gorm:"type:text"`
	WhyItMatters string         `gorm:"type:text"`
	Status       string         `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Seed) TableName() string {
	return "seeds"
}
