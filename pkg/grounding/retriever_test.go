package grounding

import (
	"context"
	"strings"
	"testing"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/repository/contract"
	"idea-copilot-be/internal/repository/specification"
	"idea-copilot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeUnitOfWork wires canned repositories behind the real contract so the
// retriever can be exercised without a database.
type fakeUnitOfWork struct {
	embeddings *fakeEmbeddingRepo
	knowledge  *fakeKnowledgeRepo
	insights   *fakeInsightRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) WorkspaceRepository() contract.WorkspaceRepository         { return nil }
func (f *fakeUnitOfWork) SeedRepository() contract.SeedRepository                   { return nil }
func (f *fakeUnitOfWork) KnowledgeItemRepository() contract.KnowledgeItemRepository { return f.knowledge }
func (f *fakeUnitOfWork) InsightRepository() contract.InsightRepository             { return f.insights }
func (f *fakeUnitOfWork) ExperimentRepository() contract.ExperimentRepository {
	return &fakeExperimentRepo{}
}
func (f *fakeUnitOfWork) PrincipleRepository() contract.PrincipleRepository {
	return &fakePrincipleRepo{}
}
func (f *fakeUnitOfWork) EventRepository() contract.EventRepository         { return nil }
func (f *fakeUnitOfWork) EmbeddingRepository() contract.EmbeddingRepository { return f.embeddings }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeEmbeddingRepo struct {
	matches []*entity.EmbeddingMatch
	limit   int
}

func (f *fakeEmbeddingRepo) Upsert(ctx context.Context, embedding *entity.WorkspaceEmbedding) error {
	return nil
}

func (f *fakeEmbeddingRepo) DeleteByItem(ctx context.Context, workspaceId, itemId uuid.UUID) error {
	return nil
}

func (f *fakeEmbeddingRepo) MatchWorkspace(ctx context.Context, workspaceId uuid.UUID, seedId *uuid.UUID, vector []float32, limit int) ([]*entity.EmbeddingMatch, error) {
	f.limit = limit
	return f.matches, nil
}

type fakeKnowledgeRepo struct {
	items []*entity.KnowledgeItem
}

func (f *fakeKnowledgeRepo) Create(ctx context.Context, item *entity.KnowledgeItem) error { return nil }
func (f *fakeKnowledgeRepo) Update(ctx context.Context, item *entity.KnowledgeItem) error { return nil }
func (f *fakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID) error               { return nil }
func (f *fakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeItem, error) {
	return nil, nil
}
func (f *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeItem, error) {
	return f.items, nil
}

type fakeInsightRepo struct {
	insights []*entity.Insight
}

func (f *fakeInsightRepo) Create(ctx context.Context, insight *entity.Insight) error { return nil }
func (f *fakeInsightRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeInsightRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Insight, error) {
	return nil, nil
}
func (f *fakeInsightRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error) {
	return f.insights, nil
}

type fakeExperimentRepo struct{}

func (f *fakeExperimentRepo) Create(ctx context.Context, experiment *entity.Experiment) error {
	return nil
}
func (f *fakeExperimentRepo) Update(ctx context.Context, experiment *entity.Experiment) error {
	return nil
}
func (f *fakeExperimentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeExperimentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error) {
	return nil, nil
}
func (f *fakeExperimentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error) {
	return nil, nil
}

type fakePrincipleRepo struct{}

func (f *fakePrincipleRepo) Create(ctx context.Context, principle *entity.Principle) error {
	return nil
}
func (f *fakePrincipleRepo) Update(ctx context.Context, principle *entity.Principle) error {
	return nil
}
func (f *fakePrincipleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakePrincipleRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Principle, error) {
	return nil, nil
}
func (f *fakePrincipleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Principle, error) {
	return nil, nil
}

func TestRetrievePreservesRankOrder(t *testing.T) {
	workspaceId := uuid.New()
	k1, i1, k2 := uuid.New(), uuid.New(), uuid.New()

	uow := &fakeUnitOfWork{
		embeddings: &fakeEmbeddingRepo{
			matches: []*entity.EmbeddingMatch{
				{ItemType: "knowledge", ItemId: k1},
				{ItemType: "insight", ItemId: i1},
				{ItemType: "knowledge", ItemId: k2},
			},
		},
		knowledge: &fakeKnowledgeRepo{
			// Deliberately out of rank order; hydration must not reorder.
			items: []*entity.KnowledgeItem{
				{Id: k2, WorkspaceId: workspaceId, Title: "Second note", Content: "second"},
				{Id: k1, WorkspaceId: workspaceId, Title: "First note", Content: "first"},
			},
		},
		insights: &fakeInsightRepo{
			insights: []*entity.Insight{
				{Id: i1, WorkspaceId: workspaceId, Summary: "the insight"},
			},
		},
	}

	retriever := NewRetriever(&fakeFactory{uow: uow})

	contexts, err := retriever.Retrieve(context.Background(), workspaceId, nil, []float32{0.1}, 5)

	assert.NoError(t, err)
	assert.Len(t, contexts, 3)
	assert.Equal(t, "first", contexts[0].Snippet)
	assert.Equal(t, "the insight", contexts[1].Snippet)
	assert.Equal(t, "second", contexts[2].Snippet)
	assert.Equal(t, 5, uow.embeddings.limit)
}

func TestRetrieveDropsStaleMatches(t *testing.T) {
	workspaceId := uuid.New()
	live, stale := uuid.New(), uuid.New()

	uow := &fakeUnitOfWork{
		embeddings: &fakeEmbeddingRepo{
			matches: []*entity.EmbeddingMatch{
				{ItemType: "knowledge", ItemId: stale},
				{ItemType: "knowledge", ItemId: live},
			},
		},
		knowledge: &fakeKnowledgeRepo{
			items: []*entity.KnowledgeItem{
				{Id: live, WorkspaceId: workspaceId, Title: "Survivor", Content: "still here"},
			},
		},
		insights: &fakeInsightRepo{},
	}

	retriever := NewRetriever(&fakeFactory{uow: uow})

	contexts, err := retriever.Retrieve(context.Background(), workspaceId, nil, []float32{0.1}, 10)

	assert.NoError(t, err)
	assert.Len(t, contexts, 1)
	assert.Equal(t, "Survivor", contexts[0].Title)
}

func TestRetrieveEmptyMatches(t *testing.T) {
	uow := &fakeUnitOfWork{
		embeddings: &fakeEmbeddingRepo{},
		knowledge:  &fakeKnowledgeRepo{},
		insights:   &fakeInsightRepo{},
	}

	retriever := NewRetriever(&fakeFactory{uow: uow})

	contexts, err := retriever.Retrieve(context.Background(), uuid.New(), nil, []float32{0.1}, 10)

	assert.NoError(t, err)
	assert.NotNil(t, contexts)
	assert.Empty(t, contexts)
}

func TestRetrieveDefaultsLimit(t *testing.T) {
	uow := &fakeUnitOfWork{
		embeddings: &fakeEmbeddingRepo{},
		knowledge:  &fakeKnowledgeRepo{},
		insights:   &fakeInsightRepo{},
	}

	retriever := NewRetriever(&fakeFactory{uow: uow})

	_, err := retriever.Retrieve(context.Background(), uuid.New(), nil, []float32{0.1}, 0)

	assert.NoError(t, err)
	assert.Equal(t, DefaultLimit, uow.embeddings.limit)
}

func TestRetrieveRefFormat(t *testing.T) {
	workspaceId := uuid.New()
	itemId := uuid.New()

	uow := &fakeUnitOfWork{
		embeddings: &fakeEmbeddingRepo{
			matches: []*entity.EmbeddingMatch{{ItemType: "knowledge", ItemId: itemId}},
		},
		knowledge: &fakeKnowledgeRepo{
			items: []*entity.KnowledgeItem{{Id: itemId, WorkspaceId: workspaceId, Content: "text"}},
		},
		insights: &fakeInsightRepo{},
	}

	retriever := NewRetriever(&fakeFactory{uow: uow})

	contexts, err := retriever.Retrieve(context.Background(), workspaceId, nil, []float32{0.1}, 10)

	assert.NoError(t, err)
	assert.Len(t, contexts, 1)
	assert.True(t, strings.HasPrefix(contexts[0].Ref, "knowledge_items:"))
	assert.Equal(t, "knowledge_items:"+itemId.String(), contexts[0].Ref)
}
