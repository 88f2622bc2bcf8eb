package copilot

import (
	"encoding/json"
	"fmt"
	"strings"

	"idea-copilot-be/pkg/ai/oracle"
)

// responseEnvelope is the loosely-typed shape the oracle is asked to return.
type responseEnvelope struct {
	Answer     interface{}            `json:"answer"`
	Mode       string                 `json:"mode"`
	Structured map[string]interface{} `json:"structured"`
}

// ParseStructuredResponse turns raw oracle content into the natural-language
// answer plus a validated StructuredSuggestion. Direct JSON parse first, then
// recovery of the first balanced {...} block; if both fail the envelope is
// unparsable and that is an error. Coercion below this point never fails:
// malformed payloads degrade to generic_answer instead.
func ParseStructuredResponse(raw string) (string, *StructuredSuggestion, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil, fmt.Errorf("%w: copilot response missing content", oracle.ErrEmptyResponse)
	}

	var envelope responseEnvelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		recovered, ok := oracle.ExtractJSONObject(trimmed)
		if !ok {
			return "", nil, fmt.Errorf("%w: %v", oracle.ErrUnparsableResponse, err)
		}
		if err := json.Unmarshal([]byte(recovered), &envelope); err != nil {
			return "", nil, fmt.Errorf("%w: %v", oracle.ErrUnparsableResponse, err)
		}
	}

	answer := trimmed
	if text, ok := envelope.Answer.(string); ok && strings.TrimSpace(text) != "" {
		answer = strings.TrimSpace(text)
	}

	mode, ok := ParseSuggestionMode(envelope.Mode)
	if !ok {
		mode = SuggestionGenericAnswer
	}

	return answer, coerceSuggestion(mode, envelope.Structured), nil
}

// coerceSuggestion dispatches to the per-mode coercion function. A payload
// whose required field is empty after trimming drops the whole structured
// suggestion back to generic_answer.
func coerceSuggestion(mode SuggestionMode, payload map[string]interface{}) *StructuredSuggestion {
	suggestion := &StructuredSuggestion{
		Mode:    mode,
		Content: stringField(payload, "content"),
	}

	switch mode {
	case SuggestionSeedProposal:
		suggestion.SeedProposal = coerceSeedProposal(payload)
		if suggestion.SeedProposal == nil {
			return genericFallback(suggestion.Content)
		}
	case SuggestionInsight:
		suggestion.Insight = CoerceInsight(payload)
		if suggestion.Insight == nil {
			return genericFallback(suggestion.Content)
		}
	case SuggestionExperiment:
		suggestion.Experiment = CoerceExperiment(payload)
		if suggestion.Experiment == nil {
			return genericFallback(suggestion.Content)
		}
	case SuggestionPrinciple:
		suggestion.Principle = CoercePrinciple(payload)
		if suggestion.Principle == nil {
			return genericFallback(suggestion.Content)
		}
	default:
		suggestion.Mode = SuggestionGenericAnswer
	}

	return suggestion
}

func genericFallback(content string) *StructuredSuggestion {
	return &StructuredSuggestion{Mode: SuggestionGenericAnswer, Content: content}
}

func coerceSeedProposal(payload map[string]interface{}) *SeedProposalPayload {
	title := stringField(payload, "title")
	if title == "" {
		return nil
	}
	return &SeedProposalPayload{
		Title:        title,
		Summary:      stringField(payload, "summary"),
		WhyItMatters: stringField(payload, "why_it_matters"),
	}
}

// CoerceInsight extracts an insight payload from untyped oracle output.
// Exported because the seed steward applies the same discipline to its
// suggestion lists.
func CoerceInsight(payload map[string]interface{}) *InsightPayload {
	summary := stringField(payload, "summary")
	if summary == "" {
		return nil
	}
	insight := &InsightPayload{
		Summary: summary,
		Details: stringField(payload, "details"),
	}
	if confidence, ok := numberField(payload, "confidence"); ok {
		clamped := ClampConfidence(confidence)
		insight.Confidence = &clamped
	}
	return insight
}

func CoerceExperiment(payload map[string]interface{}) *ExperimentPayload {
	title := stringField(payload, "title")
	if title == "" {
		return nil
	}
	return &ExperimentPayload{
		Title:      title,
		Hypothesis: stringField(payload, "hypothesis"),
		Plan:       stringField(payload, "plan"),
	}
}

func CoercePrinciple(payload map[string]interface{}) *PrinciplePayload {
	statement := stringField(payload, "statement")
	if statement == "" {
		return nil
	}
	return &PrinciplePayload{
		Statement: statement,
		Category:  stringField(payload, "category"),
	}
}

// ClampConfidence bounds an oracle-supplied confidence score to [-100, 100].
func ClampConfidence(confidence float64) float64 {
	if confidence < -100 {
		return -100
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

func stringField(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	if value, ok := payload[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func numberField(payload map[string]interface{}, key string) (float64, bool) {
	if payload == nil {
		return 0, false
	}
	switch value := payload[key].(type) {
	case float64:
		return value, true
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
