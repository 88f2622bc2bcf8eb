package service

import (
	"context"
	"fmt"
	"strings"

	"idea-copilot-be/internal/constant"
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/pkg/ai/copilot"
	"idea-copilot-be/pkg/ai/oracle"
	"idea-copilot-be/pkg/grounding"

	"github.com/google/uuid"
)

// maxEventContextRefs bounds how many context refs are recorded on the
// copilot_query event.
const maxEventContextRefs = 5

type ICopilotService interface {
	Query(ctx context.Context, userId uuid.UUID, req *dto.CopilotQueryRequest) (*dto.CopilotQueryResponse, error)
}

type copilotService struct {
	uowFactory       unitofwork.RepositoryFactory
	workspaceService IWorkspaceService
	eventService     IEventService
	oracle           oracle.Client
	retriever        *grounding.Retriever
	answerer         *copilot.Answerer
	retrieveLimit    int
	logger           logger.ILogger
}

func NewCopilotService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceService IWorkspaceService,
	eventService IEventService,
	oracleClient oracle.Client,
	retriever *grounding.Retriever,
	answerer *copilot.Answerer,
	retrieveLimit int,
	log logger.ILogger,
) ICopilotService {
	return &copilotService{
		uowFactory:       uowFactory,
		workspaceService: workspaceService,
		eventService:     eventService,
		oracle:           oracleClient,
		retriever:        retriever,
		answerer:         answerer,
		retrieveLimit:    retrieveLimit,
		logger:           log,
	}
}

func (s *copilotService) Query(ctx context.Context, userId uuid.UUID, req *dto.CopilotQueryRequest) (*dto.CopilotQueryResponse, error) {
	mode, ok := copilot.ParseMode(req.Mode)
	if !ok {
		return nil, ErrInvalidMode
	}

	lens := copilot.LensExplore
	if req.Lens != "" {
		parsed, ok := copilot.ParseLens(req.Lens)
		if !ok {
			return nil, ErrInvalidLens
		}
		lens = parsed
	}

	messages, lastUserMessage := normalizeConversation(req.Messages)
	if lastUserMessage == "" {
		return nil, ErrEmptyConversation
	}

	if err := s.workspaceService.VerifyMembership(ctx, req.WorkspaceId, userId); err != nil {
		return nil, err
	}

	flagged, err := s.oracle.Moderate(ctx, lastUserMessage)
	if err != nil {
		return nil, err
	}
	if flagged {
		return nil, ErrContentFlagged
	}

	queryEmbedding, err := s.oracle.Embed(ctx, lastUserMessage)
	if err != nil {
		return nil, err
	}

	contexts, err := s.retriever.Retrieve(ctx, req.WorkspaceId, req.SeedId, queryEmbedding, s.retrieveLimit)
	if err != nil {
		return nil, err
	}
	contexts = copilot.PrioritizeContexts(contexts, lens)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	seedSummary := ""
	if req.SeedId != nil {
		seed, err := uow.SeedRepository().FindOne(ctx,
			specification.ByID{ID: *req.SeedId},
			specification.ByWorkspaceID{WorkspaceID: req.WorkspaceId},
		)
		if err != nil {
			return nil, err
		}
		if seed == nil {
			return nil, ErrSeedNotFound
		}
		seedSummary = composeSeedSummary(seed)
	}

	workspaceSummary, err := s.composeWorkspaceSummary(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	principles, err := s.activePrincipleStatements(ctx, uow, req.WorkspaceId, req.SeedId)
	if err != nil {
		return nil, err
	}

	result, err := s.answerer.Answer(ctx, copilot.AnswerParams{
		Messages:         messages,
		Mode:             mode,
		Lens:             lens,
		WorkspaceSummary: workspaceSummary,
		SeedSummary:      seedSummary,
		Principles:       principles,
		Contexts:         contexts,
	})
	if err != nil {
		return nil, err
	}

	s.recordQueryEvent(ctx, req, userId, contexts)

	sources := make([]dto.CopilotSource, len(contexts))
	for i, c := range contexts {
		sources[i] = dto.CopilotSource{
			Type:  c.Type,
			Title: c.Title,
			Ref:   c.Ref,
		}
	}

	return &dto.CopilotQueryResponse{
		Answer:     result.Answer,
		Structured: result.Structured,
		Sources:    sources,
	}, nil
}

// normalizeConversation trims message content, drops empty messages, and
// returns the content of the last user turn.
func normalizeConversation(in []dto.CopilotMessage) ([]copilot.Message, string) {
	messages := make([]copilot.Message, 0, len(in))
	lastUserMessage := ""
	for _, msg := range in {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		messages = append(messages, copilot.Message{Role: msg.Role, Content: content})
		if msg.Role == "user" {
			lastUserMessage = content
		}
	}
	return messages, lastUserMessage
}

func composeSeedSummary(seed *entity.Seed) string {
	var sb strings.Builder
	sb.WriteString(seed.Title)
	if strings.TrimSpace(seed.Summary) != "" {
		sb.WriteString("\n")
		sb.WriteString(seed.Summary)
	}
	if strings.TrimSpace(seed.WhyItMatters) != "" {
		sb.WriteString("\nWhy it matters: ")
		sb.WriteString(seed.WhyItMatters)
	}
	return sb.String()
}

func (s *copilotService) composeWorkspaceSummary(ctx context.Context, uow unitofwork.UnitOfWork, workspaceId uuid.UUID) (string, error) {
	count, err := uow.SeedRepository().Count(ctx, specification.ByWorkspaceID{WorkspaceID: workspaceId})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Workspace contains %d seeds.", count), nil
}

// activePrincipleStatements returns workspace-level active principles plus
// the seed's own, in creation order.
func (s *copilotService) activePrincipleStatements(ctx context.Context, uow unitofwork.UnitOfWork, workspaceId uuid.UUID, seedId *uuid.UUID) ([]string, error) {
	principles, err := uow.PrincipleRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
		specification.WorkspaceLevel{},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	if seedId != nil {
		seedPrinciples, err := uow.PrincipleRepository().FindAll(ctx,
			specification.ByWorkspaceID{WorkspaceID: workspaceId},
			specification.BySeedID{SeedID: *seedId},
			specification.ActiveOnly{},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		if err != nil {
			return nil, err
		}
		principles = append(principles, seedPrinciples...)
	}

	statements := make([]string, 0, len(principles))
	for _, principle := range principles {
		statements = append(statements, principle.Statement)
	}
	return statements, nil
}

func (s *copilotService) recordQueryEvent(ctx context.Context, req *dto.CopilotQueryRequest, userId uuid.UUID, contexts []copilot.Context) {
	refs := make([]string, 0, maxEventContextRefs)
	for _, c := range contexts {
		if len(refs) == maxEventContextRefs {
			break
		}
		refs = append(refs, c.Ref)
	}

	event := entity.Event{
		WorkspaceId: req.WorkspaceId,
		SeedId:      req.SeedId,
		UserId:      &userId,
		Type:        constant.EventCopilotQuery,
		Payload: map[string]interface{}{
			"mode":         req.Mode,
			"lens":         req.Lens,
			"context_refs": refs,
		},
	}
	if err := s.eventService.Record(ctx, &event); err != nil {
		s.logger.Warn("CopilotService", "Failed to record copilot_query event", map[string]interface{}{"error": err.Error()})
	}
}
