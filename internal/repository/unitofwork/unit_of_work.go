package unitofwork

import (
	"context"

	"idea-copilot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WorkspaceRepository() contract.WorkspaceRepository
	SeedRepository() contract.SeedRepository
	KnowledgeItemRepository() contract.KnowledgeItemRepository
	InsightRepository() contract.InsightRepository
	ExperimentRepository() contract.ExperimentRepository
	PrincipleRepository() contract.PrincipleRepository
	EventRepository() contract.EventRepository
	EmbeddingRepository() contract.EmbeddingRepository
}
