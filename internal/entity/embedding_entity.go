package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceEmbedding is the stored vector for one domain item. Unique per
// (workspace, item); upsert replaces vector and metadata.
type WorkspaceEmbedding struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	SeedId      *uuid.UUID
	ItemType    string // "knowledge", "experiment", "principle", "insight"
	ItemId      uuid.UUID
	Vector      []float32
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// EmbeddingMatch is one row of the similarity-search result, ranked by
// ascending vector distance. Ordering is whatever the index returned; the
// metric itself is an opaque contract.
type EmbeddingMatch struct {
	ItemType string
	ItemId   uuid.UUID
	Metadata map[string]interface{}
}
