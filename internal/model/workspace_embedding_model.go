package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type WorkspaceEmbedding struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_item"`
	SeedId      *uuid.UUID        `gorm:"type:uuid;index"`
	ItemType    string            `gorm:"type:varchar(32);not null"`
	ItemId      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_item"`
	Embedding   pgvector.Vector   `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}

func (WorkspaceEmbedding) TableName() string {
	return "workspace_embeddings"
}
