package grounding

import (
	"context"
	"fmt"

	"idea-copilot-be/internal/constant"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/pkg/ai/copilot"

	"github.com/google/uuid"
)

// DefaultLimit is the number of matches fetched when the caller does not
// specify one.
const DefaultLimit = 10

// Retriever turns a query embedding into hydrated context snippets.
// Matches are ranked by the similarity index; hydration preserves that
// order and silently drops matches whose owning row is gone.
type Retriever struct {
	factory unitofwork.RepositoryFactory
}

func NewRetriever(factory unitofwork.RepositoryFactory) *Retriever {
	return &Retriever{
		factory: factory,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, workspaceId uuid.UUID, seedId *uuid.UUID, queryEmbedding []float32, limit int) ([]copilot.Context, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	uow := r.factory.NewUnitOfWork(ctx)
	matches, err := uow.EmbeddingRepository().MatchWorkspace(ctx, workspaceId, seedId, queryEmbedding, limit)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []copilot.Context{}, nil
	}

	idsByType := make(map[string][]uuid.UUID)
	for _, m := range matches {
		idsByType[m.ItemType] = append(idsByType[m.ItemType], m.ItemId)
	}

	sources, err := r.hydrate(ctx, uow, workspaceId, idsByType)
	if err != nil {
		return nil, err
	}

	// Re-walk the ranked match list so similarity order survives the
	// per-type batch fetches.
	contexts := make([]copilot.Context, 0, len(matches))
	for _, m := range matches {
		src, ok := sources[m.ItemId]
		if !ok {
			// Stale embedding whose owning row was deleted.
			continue
		}
		contexts = append(contexts, copilot.Context{
			Type:    m.ItemType,
			Title:   src.Title,
			Snippet: buildSnippet(src),
			Ref:     fmt.Sprintf("%s:%s", constant.TableForItemType(m.ItemType), m.ItemId),
		})
	}
	return contexts, nil
}

func (r *Retriever) hydrate(ctx context.Context, uow unitofwork.UnitOfWork, workspaceId uuid.UUID, idsByType map[string][]uuid.UUID) (map[uuid.UUID]snippetSource, error) {
	sources := make(map[uuid.UUID]snippetSource)

	for itemType, ids := range idsByType {
		specs := []specification.Specification{
			specification.ByWorkspaceID{WorkspaceID: workspaceId},
			specification.ByIDs{IDs: ids},
		}

		switch itemType {
		case constant.ItemTypeKnowledge:
			items, err := uow.KnowledgeItemRepository().FindAll(ctx, specs...)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				sources[item.Id] = snippetSource{
					Title:     item.Title,
					Content:   item.Content,
					SourceURL: item.SourceURL,
				}
			}
		case constant.ItemTypeInsight:
			insights, err := uow.InsightRepository().FindAll(ctx, specs...)
			if err != nil {
				return nil, err
			}
			for _, insight := range insights {
				sources[insight.Id] = snippetSource{
					Summary: insight.Summary,
					Details: insight.Details,
				}
			}
		case constant.ItemTypeExperiment:
			experiments, err := uow.ExperimentRepository().FindAll(ctx, specs...)
			if err != nil {
				return nil, err
			}
			for _, experiment := range experiments {
				sources[experiment.Id] = snippetSource{
					Title:   experiment.Title,
					Summary: experiment.ResultSummary,
					Details: experiment.Hypothesis,
				}
			}
		case constant.ItemTypePrinciple:
			principles, err := uow.PrincipleRepository().FindAll(ctx, specs...)
			if err != nil {
				return nil, err
			}
			for _, principle := range principles {
				sources[principle.Id] = snippetSource{
					Statement: principle.Statement,
				}
			}
		}
		// Unknown item types hydrate nothing and drop out naturally.
	}

	return sources, nil
}
