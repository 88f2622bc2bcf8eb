package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByWorkspaceID scopes a query to a single workspace
type ByWorkspaceID struct {
	WorkspaceID uuid.UUID
}

func (s ByWorkspaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workspace_id = ?", s.WorkspaceID)
}

// BySeedID scopes a query to items attached to a seed
type BySeedID struct {
	SeedID uuid.UUID
}

func (s BySeedID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("seed_id = ?", s.SeedID)
}

// WorkspaceLevel selects rows not attached to any seed
type WorkspaceLevel struct{}

func (s WorkspaceLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("seed_id IS NULL")
}

// ActiveOnly selects rows whose active flag is set
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// ByEventType filters events by their type
type ByEventType struct {
	Type string
}

func (s ByEventType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
