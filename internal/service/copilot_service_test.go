package service

import (
	"context"
	"testing"

	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/pkg/ai/copilot"
	"idea-copilot-be/pkg/ai/oracle"
	"idea-copilot-be/pkg/grounding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeWorkspaceService struct {
	memberErr error
}

func (f *fakeWorkspaceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.CreateWorkspaceResponse, error) {
	return nil, nil
}

func (f *fakeWorkspaceService) AddMember(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, req *dto.AddMemberRequest) error {
	return nil
}

func (f *fakeWorkspaceService) VerifyMembership(ctx context.Context, workspaceId, userId uuid.UUID) error {
	return f.memberErr
}

func (f *fakeWorkspaceService) ListMembers(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.WorkspaceMemberResponse, error) {
	return nil, nil
}

func (f *fakeWorkspaceService) ListEvents(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, limit int) ([]*dto.WorkspaceEventResponse, error) {
	return nil, nil
}

type recordingEventService struct {
	events []*entity.Event
}

func (f *recordingEventService) Record(ctx context.Context, event *entity.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *recordingEventService) List(ctx context.Context, workspaceId uuid.UUID, limit int) ([]*entity.Event, error) {
	return nil, nil
}

// moderatingOracle flags content on demand and fails loudly if any later
// pipeline stage is reached.
type moderatingOracle struct {
	flagged    bool
	embedCalls int
}

func (f *moderatingOracle) Embed(ctx context.Context, text string) ([]float32, error) {
	f.embedCalls++
	return nil, oracle.ErrNotConfigured
}

func (f *moderatingOracle) Complete(ctx context.Context, messages []oracle.Message, options ...oracle.Option) (string, error) {
	return "", oracle.ErrNotConfigured
}

func (f *moderatingOracle) Moderate(ctx context.Context, text string) (bool, error) {
	return f.flagged, nil
}

func newCopilotFixture(workspace *fakeWorkspaceService, oracleClient oracle.Client) ICopilotService {
	log := logger.NewNopLogger()
	return NewCopilotService(
		nil,
		workspace,
		&recordingEventService{},
		oracleClient,
		grounding.NewRetriever(nil),
		copilot.NewAnswerer(oracleClient, log),
		10,
		log,
	)
}

func validQueryRequest() *dto.CopilotQueryRequest {
	return &dto.CopilotQueryRequest{
		WorkspaceId: uuid.New(),
		Mode:        "ask",
		Messages: []dto.CopilotMessage{
			{Role: "user", Content: "What should we try next?"},
		},
	}
}

func TestCopilotQueryRejectsInvalidMode(t *testing.T) {
	svc := newCopilotFixture(&fakeWorkspaceService{}, &moderatingOracle{})

	req := validQueryRequest()
	req.Mode = "prophesy"

	_, err := svc.Query(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestCopilotQueryRejectsInvalidLens(t *testing.T) {
	svc := newCopilotFixture(&fakeWorkspaceService{}, &moderatingOracle{})

	req := validQueryRequest()
	req.Lens = "zoom"

	_, err := svc.Query(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, ErrInvalidLens)
}

func TestCopilotQueryRejectsEmptyConversation(t *testing.T) {
	svc := newCopilotFixture(&fakeWorkspaceService{}, &moderatingOracle{})

	tests := []struct {
		name     string
		messages []dto.CopilotMessage
	}{
		{"no messages", nil},
		{"whitespace only", []dto.CopilotMessage{{Role: "user", Content: "   \n  "}}},
		{"assistant turns only", []dto.CopilotMessage{{Role: "assistant", Content: "hello"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQueryRequest()
			req.Messages = tt.messages

			_, err := svc.Query(context.Background(), uuid.New(), req)

			assert.ErrorIs(t, err, ErrEmptyConversation)
		})
	}
}

func TestCopilotQueryRejectsNonMember(t *testing.T) {
	svc := newCopilotFixture(&fakeWorkspaceService{memberErr: ErrNotMember}, &moderatingOracle{})

	_, err := svc.Query(context.Background(), uuid.New(), validQueryRequest())

	assert.ErrorIs(t, err, ErrNotMember)
}

func TestCopilotQueryRejectsFlaggedContent(t *testing.T) {
	oracleClient := &moderatingOracle{flagged: true}
	svc := newCopilotFixture(&fakeWorkspaceService{}, oracleClient)

	_, err := svc.Query(context.Background(), uuid.New(), validQueryRequest())

	assert.ErrorIs(t, err, ErrContentFlagged)
	assert.Zero(t, oracleClient.embedCalls, "flagged content must not be embedded")
}

func TestNormalizeConversation(t *testing.T) {
	messages, lastUser := normalizeConversation([]dto.CopilotMessage{
		{Role: "user", Content: "  first question  "},
		{Role: "assistant", Content: "an answer"},
		{Role: "user", Content: ""},
		{Role: "user", Content: "follow-up"},
	})

	assert.Len(t, messages, 3)
	assert.Equal(t, "first question", messages[0].Content)
	assert.Equal(t, "follow-up", lastUser)
}

func TestComposeSeedSummary(t *testing.T) {
	tests := []struct {
		name string
		seed entity.Seed
		want string
	}{
		{
			name: "all fields",
			seed: entity.Seed{Title: "Faster onboarding", Summary: "Cut steps.", WhyItMatters: "Churn is early."},
			want: "Faster onboarding\nCut steps.\nWhy it matters: Churn is early.",
		},
		{
			name: "title only",
			seed: entity.Seed{Title: "Bare seed"},
			want: "Bare seed",
		},
		{
			name: "no why it matters",
			seed: entity.Seed{Title: "T", Summary: "S"},
			want: "T\nS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, composeSeedSummary(&tt.seed))
		})
	}
}
