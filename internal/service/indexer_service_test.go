package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/contract"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/pkg/ai/oracle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// countingOracle records how many embedding calls were made.
type countingOracle struct {
	embedCalls int
	vector     []float32
	err        error
}

func (f *countingOracle) Embed(ctx context.Context, text string) ([]float32, error) {
	f.embedCalls++
	return f.vector, f.err
}

func (f *countingOracle) Complete(ctx context.Context, messages []oracle.Message, options ...oracle.Option) (string, error) {
	return "", errors.New("not implemented")
}

func (f *countingOracle) Moderate(ctx context.Context, text string) (bool, error) {
	return false, nil
}

type capturingEmbeddingRepo struct {
	upserts []*entity.WorkspaceEmbedding
}

func (r *capturingEmbeddingRepo) Upsert(ctx context.Context, embedding *entity.WorkspaceEmbedding) error {
	r.upserts = append(r.upserts, embedding)
	return nil
}

func (r *capturingEmbeddingRepo) DeleteByItem(ctx context.Context, workspaceId, itemId uuid.UUID) error {
	return nil
}

func (r *capturingEmbeddingRepo) MatchWorkspace(ctx context.Context, workspaceId uuid.UUID, seedId *uuid.UUID, vector []float32, limit int) ([]*entity.EmbeddingMatch, error) {
	return nil, nil
}

type indexerTestUow struct {
	embeddings *capturingEmbeddingRepo
}

func (u *indexerTestUow) Begin(ctx context.Context) error { return nil }
func (u *indexerTestUow) Commit() error                   { return nil }
func (u *indexerTestUow) Rollback() error                 { return nil }

func (u *indexerTestUow) WorkspaceRepository() contract.WorkspaceRepository         { return nil }
func (u *indexerTestUow) SeedRepository() contract.SeedRepository                   { return nil }
func (u *indexerTestUow) KnowledgeItemRepository() contract.KnowledgeItemRepository { return nil }
func (u *indexerTestUow) InsightRepository() contract.InsightRepository             { return nil }
func (u *indexerTestUow) ExperimentRepository() contract.ExperimentRepository       { return nil }
func (u *indexerTestUow) PrincipleRepository() contract.PrincipleRepository         { return nil }
func (u *indexerTestUow) EventRepository() contract.EventRepository                 { return nil }
func (u *indexerTestUow) EmbeddingRepository() contract.EmbeddingRepository         { return u.embeddings }

type indexerTestFactory struct {
	uow *indexerTestUow
}

func (f *indexerTestFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newIndexerFixture(oracleClient oracle.Client) (IIndexerService, *capturingEmbeddingRepo) {
	repo := &capturingEmbeddingRepo{}
	factory := &indexerTestFactory{uow: &indexerTestUow{embeddings: repo}}
	svc := NewIndexerService(nil, "test-topic", factory, oracleClient, logger.NewNopLogger())
	return svc, repo
}

func TestUpsertEmbeddingSkipsShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "    \n\t  "},
		{"below threshold", strings.Repeat("a", MinEmbedTextLength-1)},
		{"short after trimming", "   " + strings.Repeat("a", MinEmbedTextLength-1) + "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracleClient := &countingOracle{vector: []float32{0.1}}
			svc, repo := newIndexerFixture(oracleClient)

			err := svc.UpsertEmbedding(context.Background(), UpsertEmbeddingParams{
				WorkspaceId: uuid.New(),
				ItemType:    "knowledge",
				ItemId:      uuid.New(),
				Text:        tt.text,
			})

			assert.NoError(t, err)
			assert.Zero(t, oracleClient.embedCalls, "short text must not reach the oracle")
			assert.Empty(t, repo.upserts)
		})
	}
}

func TestUpsertEmbeddingAtThreshold(t *testing.T) {
	oracleClient := &countingOracle{vector: []float32{0.1, 0.2}}
	svc, repo := newIndexerFixture(oracleClient)

	err := svc.UpsertEmbedding(context.Background(), UpsertEmbeddingParams{
		WorkspaceId: uuid.New(),
		ItemType:    "insight",
		ItemId:      uuid.New(),
		Text:        strings.Repeat("a", MinEmbedTextLength),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, oracleClient.embedCalls)
	assert.Len(t, repo.upserts, 1)
}

func TestUpsertEmbeddingCountsRunesNotBytes(t *testing.T) {
	// Multibyte text short in bytes terms would pass a byte-length check
	// but these runes count individually.
	oracleClient := &countingOracle{vector: []float32{0.1}}
	svc, repo := newIndexerFixture(oracleClient)

	err := svc.UpsertEmbedding(context.Background(), UpsertEmbeddingParams{
		WorkspaceId: uuid.New(),
		ItemType:    "knowledge",
		ItemId:      uuid.New(),
		Text:        strings.Repeat("é", MinEmbedTextLength),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, oracleClient.embedCalls)
	assert.Len(t, repo.upserts, 1)
}

func TestUpsertEmbeddingStoresVectorAndMetadata(t *testing.T) {
	oracleClient := &countingOracle{vector: []float32{0.5, 0.25}}
	svc, repo := newIndexerFixture(oracleClient)

	workspaceId := uuid.New()
	seedId := uuid.New()
	itemId := uuid.New()

	err := svc.UpsertEmbedding(context.Background(), UpsertEmbeddingParams{
		WorkspaceId: workspaceId,
		SeedId:      &seedId,
		ItemType:    "experiment",
		ItemId:      itemId,
		Text:        "A long enough experiment description to embed.",
		Metadata:    map[string]interface{}{"title": "Two-step signup"},
	})

	assert.NoError(t, err)
	if assert.Len(t, repo.upserts, 1) {
		stored := repo.upserts[0]
		assert.Equal(t, workspaceId, stored.WorkspaceId)
		assert.Equal(t, &seedId, stored.SeedId)
		assert.Equal(t, "experiment", stored.ItemType)
		assert.Equal(t, itemId, stored.ItemId)
		assert.Equal(t, []float32{0.5, 0.25}, stored.Vector)
		assert.Equal(t, "Two-step signup", stored.Metadata["title"])
	}
}

func TestUpsertEmbeddingOracleErrorPropagates(t *testing.T) {
	oracleClient := &countingOracle{err: oracle.ErrNotConfigured}
	svc, repo := newIndexerFixture(oracleClient)

	err := svc.UpsertEmbedding(context.Background(), UpsertEmbeddingParams{
		WorkspaceId: uuid.New(),
		ItemType:    "knowledge",
		ItemId:      uuid.New(),
		Text:        "A long enough piece of text to embed normally.",
	})

	assert.ErrorIs(t, err, oracle.ErrNotConfigured)
	assert.Empty(t, repo.upserts)
}
