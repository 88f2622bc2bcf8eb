package contract

import (
	"context"

	"idea-copilot-be/internal/entity"

	"github.com/google/uuid"
)

type EmbeddingRepository interface {
	// Upsert inserts the embedding or, when a row for the same
	// (workspace, item) pair exists, replaces its vector and metadata.
	Upsert(ctx context.Context, embedding *entity.WorkspaceEmbedding) error
	DeleteByItem(ctx context.Context, workspaceId, itemId uuid.UUID) error
	// MatchWorkspace runs a similarity search scoped to a workspace,
	// optionally narrowed to a single seed, ordered by ascending distance.
	MatchWorkspace(ctx context.Context, workspaceId uuid.UUID, seedId *uuid.UUID, vector []float32, limit int) ([]*entity.EmbeddingMatch, error)
}
