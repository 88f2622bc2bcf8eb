package service

import (
	"context"
	"time"

	"idea-copilot-be/internal/constant"
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/pkg/ai/steward"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// Digest caps: enough history for the steward to reason over without
	// blowing up the prompt.
	digestMaxKnowledge   = 8
	digestMaxInsights    = 8
	digestMaxExperiments = 8
	digestMaxEvents      = 10

	// digestFieldLimit truncates every free-text digest field.
	digestFieldLimit = 240
)

type IStewardService interface {
	// Suggest runs the advisory steward pass for a seed. Nothing is
	// persisted; the caller owns accept/dismiss of each suggestion.
	Suggest(ctx context.Context, userId uuid.UUID, req *dto.SeedStewardRequest) (*dto.SeedStewardResponse, error)
}

type stewardService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
	steward          *steward.Steward
	logger           logger.ILogger
}

func NewStewardService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
	stewardEngine *steward.Steward,
	log logger.ILogger,
) IStewardService {
	return &stewardService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
		steward:          stewardEngine,
		logger:           log,
	}
}

func (s *stewardService) Suggest(ctx context.Context, userId uuid.UUID, req *dto.SeedStewardRequest) (*dto.SeedStewardResponse, error) {
	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	seed, err := uow.SeedRepository().FindOne(ctx,
		specification.ByID{ID: req.SeedId},
		specification.ByWorkspaceID{WorkspaceID: req.WorkspaceId},
	)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, ErrSeedNotFound
	}

	digest, err := s.buildDigest(ctx, seed)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.steward.Suggest(ctx, *digest)
	if err != nil {
		return nil, err
	}

	s.recordStewardEvent(ctx, req, userId, suggestions)

	return &dto.SeedStewardResponse{Suggestions: suggestions}, nil
}

// buildDigest gathers the seed's history with one concurrent fetch per
// collection. Each UnitOfWork is per-goroutine; they never share state.
func (s *stewardService) buildDigest(ctx context.Context, seed *entity.Seed) (*steward.Digest, error) {
	digest := steward.Digest{
		Seed: steward.SeedSummary{
			Title:        truncateField(seed.Title),
			Summary:      truncateField(seed.Summary),
			WhyItMatters: truncateField(seed.WhyItMatters),
			Status:       seed.Status,
		},
	}

	seedScope := func(limit int) []specification.Specification {
		return []specification.Specification{
			specification.ByWorkspaceID{WorkspaceID: seed.WorkspaceId},
			specification.BySeedID{SeedID: seed.Id},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: limit},
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		items, err := uow.KnowledgeItemRepository().FindAll(gctx, seedScope(digestMaxKnowledge)...)
		if err != nil {
			return err
		}
		digest.Knowledge = make([]steward.KnowledgeDigest, len(items))
		for i, item := range items {
			snippet := item.Content
			if snippet == "" {
				snippet = item.SourceURL
			}
			digest.Knowledge[i] = steward.KnowledgeDigest{
				Title:   truncateField(item.Title),
				Type:    item.Type,
				Snippet: truncateField(snippet),
			}
		}
		return nil
	})

	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		insights, err := uow.InsightRepository().FindAll(gctx, seedScope(digestMaxInsights)...)
		if err != nil {
			return err
		}
		digest.Insights = make([]steward.InsightDigest, len(insights))
		for i, insight := range insights {
			digest.Insights[i] = steward.InsightDigest{
				Summary: truncateField(insight.Summary),
				Details: truncateField(insight.Details),
			}
		}
		return nil
	})

	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		experiments, err := uow.ExperimentRepository().FindAll(gctx, seedScope(digestMaxExperiments)...)
		if err != nil {
			return err
		}
		digest.Experiments = make([]steward.ExperimentDigest, len(experiments))
		for i, experiment := range experiments {
			digest.Experiments[i] = steward.ExperimentDigest{
				Title:         truncateField(experiment.Title),
				Status:        experiment.Status,
				Hypothesis:    truncateField(experiment.Hypothesis),
				Plan:          truncateField(experiment.Plan),
				ResultSummary: truncateField(experiment.ResultSummary),
			}
		}
		return nil
	})

	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		eventList, err := uow.EventRepository().FindAll(gctx, seedScope(digestMaxEvents)...)
		if err != nil {
			return err
		}
		digest.Events = make([]steward.EventDigest, len(eventList))
		for i, event := range eventList {
			digest.Events[i] = steward.EventDigest{
				Type:       event.Type,
				OccurredAt: event.CreatedAt.Format(time.RFC3339),
				Note:       truncateField(eventNote(event)),
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &digest, nil
}

// eventNote extracts a human-readable line from the event payload.
func eventNote(event *entity.Event) string {
	for _, key := range []string{"title", "summary", "statement", "status"} {
		if value, ok := event.Payload[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func truncateField(s string) string {
	runes := []rune(s)
	if len(runes) <= digestFieldLimit {
		return s
	}
	return string(runes[:digestFieldLimit])
}

func (s *stewardService) recordStewardEvent(ctx context.Context, req *dto.SeedStewardRequest, userId uuid.UUID, suggestions *steward.Suggestions) {
	summaryUpdates := 0
	if suggestions.SummaryUpdate != nil {
		summaryUpdates = 1
	}

	event := entity.Event{
		WorkspaceId: req.WorkspaceId,
		SeedId:      &req.SeedId,
		UserId:      &userId,
		Type:        constant.EventSeedStewardRequested,
		Payload: map[string]interface{}{
			"suggestion_counts": map[string]interface{}{
				"summary_update": summaryUpdates,
				"insights":       len(suggestions.InsightSuggestions),
				"experiments":    len(suggestions.ExperimentSuggestions),
				"principles":     len(suggestions.PrincipleSuggestions),
			},
		},
	}
	if err := s.eventService.Record(ctx, &event); err != nil {
		s.logger.Warn("StewardService", "Failed to record steward event", map[string]interface{}{"error": err.Error()})
	}
}
