package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"idea-copilot-be/internal/constant"
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/pkg/ai/oracle"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// MinEmbedTextLength is the shortest post-trim text worth embedding.
// Shorter strings produce low-quality vectors and waste oracle calls.
const MinEmbedTextLength = 24

type UpsertEmbeddingParams struct {
	WorkspaceId uuid.UUID
	SeedId      *uuid.UUID
	ItemType    string
	ItemId      uuid.UUID
	Text        string
	Metadata    map[string]interface{}
}

type IIndexerService interface {
	// UpsertEmbedding embeds the item text and stores it keyed by
	// (workspace, item). Text below MinEmbedTextLength is silently skipped.
	UpsertEmbedding(ctx context.Context, params UpsertEmbeddingParams) error
	// Consume starts draining the indexing topic in a background goroutine.
	Consume(ctx context.Context) error
}

type indexerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	oracle     oracle.Client
	logger     logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	oracleClient oracle.Client,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		oracle:     oracleClient,
		logger:     log,
	}
}

func (s *indexerService) UpsertEmbedding(ctx context.Context, params UpsertEmbeddingParams) error {
	text := strings.TrimSpace(params.Text)
	if utf8.RuneCountInString(text) < MinEmbedTextLength {
		s.logger.Debug("IndexerService", "Skipping embedding for short text", map[string]interface{}{
			"item_type": params.ItemType,
			"item_id":   params.ItemId,
			"length":    utf8.RuneCountInString(text),
		})
		return nil
	}

	vector, err := s.oracle.Embed(ctx, text)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	embedding := entity.WorkspaceEmbedding{
		Id:          uuid.New(),
		WorkspaceId: params.WorkspaceId,
		SeedId:      params.SeedId,
		ItemType:    params.ItemType,
		ItemId:      params.ItemId,
		Vector:      vector,
		Metadata:    params.Metadata,
		CreatedAt:   time.Now(),
	}
	return uow.EmbeddingRepository().Upsert(ctx, &embedding)
}

func (s *indexerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedItemMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("IndexerService", "Failed to unmarshal indexing message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payload will never parse, do not retry
		return
	}

	text, metadata, found, err := s.loadItemText(ctx, payload)
	if err != nil {
		s.logger.Error("IndexerService", "Failed to load item for indexing", map[string]interface{}{
			"item_type": payload.ItemType,
			"item_id":   payload.ItemId,
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}
	if !found {
		// Item deleted between creation and indexing.
		msg.Ack()
		return
	}

	err = s.UpsertEmbedding(ctx, UpsertEmbeddingParams{
		WorkspaceId: payload.WorkspaceId,
		SeedId:      payload.SeedId,
		ItemType:    payload.ItemType,
		ItemId:      payload.ItemId,
		Text:        text,
		Metadata:    metadata,
	})
	if err != nil {
		s.logger.Error("IndexerService", "Failed to upsert embedding", map[string]interface{}{
			"item_type": payload.ItemType,
			"item_id":   payload.ItemId,
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

// loadItemText assembles the text to embed from the owning row's fields.
func (s *indexerService) loadItemText(ctx context.Context, payload dto.PublishEmbedItemMessage) (string, map[string]interface{}, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.ByID{ID: payload.ItemId},
		specification.ByWorkspaceID{WorkspaceID: payload.WorkspaceId},
	}

	switch payload.ItemType {
	case constant.ItemTypeKnowledge:
		item, err := uow.KnowledgeItemRepository().FindOne(ctx, specs...)
		if err != nil || item == nil {
			return "", nil, false, err
		}
		return joinNonEmpty(item.Title, item.Content, item.SourceURL), map[string]interface{}{"title": item.Title}, true, nil
	case constant.ItemTypeInsight:
		insight, err := uow.InsightRepository().FindOne(ctx, specs...)
		if err != nil || insight == nil {
			return "", nil, false, err
		}
		return joinNonEmpty(insight.Summary, insight.Details), map[string]interface{}{"summary": insight.Summary}, true, nil
	case constant.ItemTypeExperiment:
		experiment, err := uow.ExperimentRepository().FindOne(ctx, specs...)
		if err != nil || experiment == nil {
			return "", nil, false, err
		}
		return joinNonEmpty(experiment.Title, experiment.Hypothesis, experiment.Plan, experiment.ResultSummary),
			map[string]interface{}{"title": experiment.Title}, true, nil
	case constant.ItemTypePrinciple:
		principle, err := uow.PrincipleRepository().FindOne(ctx, specs...)
		if err != nil || principle == nil {
			return "", nil, false, err
		}
		return principle.Statement, map[string]interface{}{"statement": principle.Statement}, true, nil
	}

	s.logger.Warn("IndexerService", "Unknown item type on indexing topic", map[string]interface{}{"item_type": payload.ItemType})
	return "", nil, false, nil
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "\n\n")
}
