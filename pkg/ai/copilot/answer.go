package copilot

import (
	"context"

	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/pkg/ai/oracle"
)

const answerTemperature = 0.3

// Answerer runs the copilot protocol: assemble the system prompt, send the
// conversation to the completion oracle under the response schema, parse and
// coerce the result.
type Answerer struct {
	oracle oracle.Client
	logger logger.ILogger
}

func NewAnswerer(oracleClient oracle.Client, log logger.ILogger) *Answerer {
	return &Answerer{
		oracle: oracleClient,
		logger: log,
	}
}

// AnswerParams is a fully-prepared copilot query: normalized conversation
// plus the grounding material gathered by the caller.
type AnswerParams struct {
	Messages         []Message
	Mode             Mode
	Lens             Lens
	WorkspaceSummary string
	SeedSummary      string
	Principles       []string
	Contexts         []Context
}

// AnswerResult pairs the natural-language answer with the validated
// structured suggestion.
type AnswerResult struct {
	Answer     string
	Structured *StructuredSuggestion
}

// Answer performs a single oracle round trip. Transport errors propagate
// unmodified; empty or unparsable content maps to the oracle error taxonomy.
// No retries at this layer.
func (a *Answerer) Answer(ctx context.Context, params AnswerParams) (*AnswerResult, error) {
	systemPrompt := BuildSystemPrompt(PromptParams{
		Mode:             params.Mode,
		Lens:             params.Lens,
		WorkspaceSummary: params.WorkspaceSummary,
		SeedSummary:      params.SeedSummary,
		Principles:       params.Principles,
		Contexts:         params.Contexts,
	})

	history := make([]oracle.Message, 0, len(params.Messages)+1)
	history = append(history, oracle.Message{Role: "system", Content: systemPrompt})
	for _, message := range params.Messages {
		history = append(history, oracle.Message{Role: message.Role, Content: message.Content})
	}

	content, err := a.oracle.Complete(ctx, history,
		oracle.WithTemperature(answerTemperature),
		oracle.WithResponseSchema(copilotResponseSchema),
	)
	if err != nil {
		return nil, err
	}

	answer, structured, err := ParseStructuredResponse(content)
	if err != nil {
		a.logger.Warn("Copilot", "Failed to parse oracle response", map[string]interface{}{
			"error":          err.Error(),
			"content_length": len(content),
		})
		return nil, err
	}

	return &AnswerResult{Answer: answer, Structured: structured}, nil
}
