package steward

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/pkg/ai/oracle"

	"github.com/stretchr/testify/assert"
)

// fakeOracle returns a canned completion, or an error when set.
type fakeOracle struct {
	content string
	err     error
}

func (f *fakeOracle) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOracle) Complete(ctx context.Context, messages []oracle.Message, options ...oracle.Option) (string, error) {
	return f.content, f.err
}

func (f *fakeOracle) Moderate(ctx context.Context, text string) (bool, error) {
	return false, nil
}

func newTestSteward(content string) *Steward {
	return NewSteward(&fakeOracle{content: content}, logger.NewNopLogger())
}

func TestSuggestEmptyResponseIsEmptyBatch(t *testing.T) {
	steward := newTestSteward("   ")

	suggestions, err := steward.Suggest(context.Background(), Digest{})

	assert.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Nil(t, suggestions.SummaryUpdate)
	assert.Empty(t, suggestions.InsightSuggestions)
	assert.Empty(t, suggestions.ExperimentSuggestions)
	assert.Empty(t, suggestions.PrincipleSuggestions)
}

func TestSuggestFullBatch(t *testing.T) {
	steward := newTestSteward(`{
		"summary_update": {"summary": "Refined summary", "why_it_matters": "Sharper focus"},
		"insight_suggestions": [{"summary": "Users prefer defaults", "confidence": 40}],
		"experiment_suggestions": [{"title": "A/B the default", "hypothesis": "Defaults win"}],
		"principle_suggestions": [{"statement": "Default to the common case"}]
	}`)

	suggestions, err := steward.Suggest(context.Background(), Digest{})

	assert.NoError(t, err)
	assert.NotNil(t, suggestions.SummaryUpdate)
	assert.Equal(t, "Refined summary", suggestions.SummaryUpdate.Summary)
	assert.Equal(t, "Sharper focus", suggestions.SummaryUpdate.WhyItMatters)
	assert.Len(t, suggestions.InsightSuggestions, 1)
	assert.Len(t, suggestions.ExperimentSuggestions, 1)
	assert.Len(t, suggestions.PrincipleSuggestions, 1)
	if assert.NotNil(t, suggestions.InsightSuggestions[0].Confidence) {
		assert.Equal(t, float64(40), *suggestions.InsightSuggestions[0].Confidence)
	}
}

func TestSuggestCapsListsAfterCoercion(t *testing.T) {
	// Eight entries, two invalid. The cap applies to the five survivors,
	// not to the raw list.
	var entries []string
	for i := 0; i < 6; i++ {
		entries = append(entries, fmt.Sprintf(`{"summary": "insight %d"}`, i))
	}
	entries = append(entries, `{"details": "no summary"}`, `{"summary": "   "}`)
	raw := fmt.Sprintf(`{"insight_suggestions": [%s]}`, strings.Join(entries, ","))

	steward := newTestSteward(raw)

	suggestions, err := steward.Suggest(context.Background(), Digest{})

	assert.NoError(t, err)
	assert.Len(t, suggestions.InsightSuggestions, 5)
	for i, insight := range suggestions.InsightSuggestions {
		assert.Equal(t, fmt.Sprintf("insight %d", i), insight.Summary)
	}
}

func TestSuggestDropsInvalidEntries(t *testing.T) {
	steward := newTestSteward(`{
		"summary_update": {"why_it_matters": "no summary field"},
		"experiment_suggestions": [{"hypothesis": "orphan"}, {"title": "Valid one"}],
		"principle_suggestions": [{"statement": ""}]
	}`)

	suggestions, err := steward.Suggest(context.Background(), Digest{})

	assert.NoError(t, err)
	assert.Nil(t, suggestions.SummaryUpdate)
	assert.Len(t, suggestions.ExperimentSuggestions, 1)
	assert.Equal(t, "Valid one", suggestions.ExperimentSuggestions[0].Title)
	assert.Empty(t, suggestions.PrincipleSuggestions)
}

func TestSuggestUnparsableResponse(t *testing.T) {
	steward := newTestSteward("the seed looks healthy to me")

	_, err := steward.Suggest(context.Background(), Digest{})

	assert.ErrorIs(t, err, oracle.ErrUnparsableResponse)
}

func TestSuggestOracleErrorPropagates(t *testing.T) {
	steward := NewSteward(&fakeOracle{err: oracle.ErrNotConfigured}, logger.NewNopLogger())

	_, err := steward.Suggest(context.Background(), Digest{})

	assert.ErrorIs(t, err, oracle.ErrNotConfigured)
}

func TestBuildDigestPrompt(t *testing.T) {
	digest := Digest{
		Seed: SeedSummary{
			Title:        "Faster onboarding",
			Summary:      "Cut signup to two steps.",
			WhyItMatters: "Churn happens early.",
			Status:       "active",
		},
		Knowledge: []KnowledgeDigest{
			{Title: "Funnel data", Type: "note", Snippet: "Step 3 loses half the users."},
		},
		Insights: []InsightDigest{
			{Summary: "Defaults matter", Details: "Prefilled fields convert better."},
		},
		Experiments: []ExperimentDigest{
			{Title: "Two-step signup", Status: "running", Hypothesis: "Fewer steps, more signups."},
		},
		Events: []EventDigest{
			{Type: "seed_created", OccurredAt: "2026-08-01T10:00:00Z"},
		},
	}

	prompt := buildDigestPrompt(digest)

	for _, want := range []string{
		"Title: Faster onboarding",
		"Summary: Cut signup to two steps.",
		"Why it matters: Churn happens early.",
		"Status: active",
		"[note] Funnel data: Step 3 loses half the users.",
		"Defaults matter - Prefilled fields convert better.",
		"Two-step signup (status: running) hypothesis: Fewer steps, more signups.",
		"seed_created at 2026-08-01T10:00:00Z",
	} {
		assert.Contains(t, prompt, want)
	}

	assert.Equal(t, prompt, buildDigestPrompt(digest), "digest prompt should be deterministic")
}

func TestBuildDigestPromptOmitsEmptySections(t *testing.T) {
	prompt := buildDigestPrompt(Digest{Seed: SeedSummary{Title: "Bare seed"}})

	assert.NotContains(t, prompt, "Knowledge:")
	assert.NotContains(t, prompt, "Insights:")
	assert.NotContains(t, prompt, "Experiments:")
	assert.NotContains(t, prompt, "Recent events:")
}
