package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Experiment struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	SeedId        *uuid.UUID     `gorm:"type:uuid;index"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Status        string         `gorm:"type:varchar(32);not null;default:'proposed'"`
	Hypothesis    string         `gorm:"type:text"`
	Plan          string         `gorm:"type:text"`
	ResultSummary string         `gorm:"type:text"`
	CreatedBy     uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Experiment) TableName() string {
	return "experiments"
}
