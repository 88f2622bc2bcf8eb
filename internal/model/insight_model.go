package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Insight struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID      `gorm:"type:uuid;not null;index"`
	SeedId      *uuid.UUID     `gorm:"type:uuid;index"`
	Summary     string         `gorm:"type:text;not null"`
	Details     string         `gorm:"type:text"`
	Confidence  *float64       `gorm:"type:numeric(5,1)"`
	SourceType  string         `gorm:"type:varchar(32)"`
	SourceId    *uuid.UUID     `gorm:"type:uuid"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Insight) TableName() string {
	return "insights"
}
