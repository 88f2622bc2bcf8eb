package steward

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/pkg/ai/copilot"
	"idea-copilot-be/pkg/ai/oracle"
)

const (
	suggestTemperature = 0.2

	// maxSuggestionsPerList caps each advisory list regardless of how many
	// entries the oracle emits.
	maxSuggestionsPerList = 5
)

// Steward asks the oracle for advisory mutations to a seed: a summary
// rewrite plus new insight/experiment/principle suggestions. It never
// persists anything; the caller decides what to accept.
type Steward struct {
	oracle oracle.Client
	logger logger.ILogger
}

func NewSteward(oracleClient oracle.Client, log logger.ILogger) *Steward {
	return &Steward{
		oracle: oracleClient,
		logger: log,
	}
}

// stewardEnvelope mirrors the response schema loosely; every inner value is
// coerced before being trusted.
type stewardEnvelope struct {
	SummaryUpdate         map[string]interface{}   `json:"summary_update"`
	InsightSuggestions    []map[string]interface{} `json:"insight_suggestions"`
	ExperimentSuggestions []map[string]interface{} `json:"experiment_suggestions"`
	PrincipleSuggestions  []map[string]interface{} `json:"principle_suggestions"`
}

// Suggest performs the one-shot advisory pass. An empty oracle response is a
// valid outcome (no suggestions), not an error.
func (s *Steward) Suggest(ctx context.Context, digest Digest) (*Suggestions, error) {
	history := []oracle.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildDigestPrompt(digest)},
	}

	content, err := s.oracle.Complete(ctx, history,
		oracle.WithTemperature(suggestTemperature),
		oracle.WithResponseSchema(stewardResponseSchema),
	)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		s.logger.Info("SeedSteward", "Oracle returned no suggestions", nil)
		return &Suggestions{}, nil
	}

	var envelope stewardEnvelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		recovered, ok := oracle.ExtractJSONObject(trimmed)
		if !ok {
			return nil, fmt.Errorf("%w: %v", oracle.ErrUnparsableResponse, err)
		}
		if err := json.Unmarshal([]byte(recovered), &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", oracle.ErrUnparsableResponse, err)
		}
	}

	return s.coerce(&envelope), nil
}

func (s *Steward) coerce(envelope *stewardEnvelope) *Suggestions {
	suggestions := &Suggestions{}

	if update := coerceSummaryUpdate(envelope.SummaryUpdate); update != nil {
		suggestions.SummaryUpdate = update
	}

	for _, payload := range envelope.InsightSuggestions {
		if insight := copilot.CoerceInsight(payload); insight != nil {
			suggestions.InsightSuggestions = append(suggestions.InsightSuggestions, *insight)
		}
	}
	for _, payload := range envelope.ExperimentSuggestions {
		if experiment := copilot.CoerceExperiment(payload); experiment != nil {
			suggestions.ExperimentSuggestions = append(suggestions.ExperimentSuggestions, *experiment)
		}
	}
	for _, payload := range envelope.PrincipleSuggestions {
		if principle := copilot.CoercePrinciple(payload); principle != nil {
			suggestions.PrincipleSuggestions = append(suggestions.PrincipleSuggestions, *principle)
		}
	}

	suggestions.InsightSuggestions = capList(suggestions.InsightSuggestions)
	suggestions.ExperimentSuggestions = capList(suggestions.ExperimentSuggestions)
	suggestions.PrincipleSuggestions = capList(suggestions.PrincipleSuggestions)

	return suggestions
}

func coerceSummaryUpdate(payload map[string]interface{}) *SummaryUpdate {
	if payload == nil {
		return nil
	}
	summary := trimmedString(payload, "summary")
	if summary == "" {
		return nil
	}
	return &SummaryUpdate{
		Summary:      summary,
		WhyItMatters: trimmedString(payload, "why_it_matters"),
	}
}

func capList[T any](items []T) []T {
	if len(items) > maxSuggestionsPerList {
		return items[:maxSuggestionsPerList]
	}
	return items
}

func trimmedString(payload map[string]interface{}, key string) string {
	if value, ok := payload[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}
