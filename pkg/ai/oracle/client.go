package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Message is a chat message in a provider-agnostic format.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// ResponseSchema constrains a completion to a JSON schema.
type ResponseSchema struct {
	Name   string
	Schema json.RawMessage
}

// Option allows optional completion parameters.
type Option func(*Options)

type Options struct {
	Temperature float32
	Model       string // override default chat model
	Schema      *ResponseSchema
}

func WithTemperature(temp float32) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithResponseSchema(schema *ResponseSchema) Option {
	return func(o *Options) {
		o.Schema = schema
	}
}

// Client is the contract for the external AI oracles. The copilot treats
// every oracle as opaque and possibly unreliable; no retries happen here.
type Client interface {
	// Embed converts text into a fixed-dimension vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Complete sends a chat history to the completion oracle and returns
	// the raw text content. Content may be empty; callers decide whether
	// that is an error for their use case.
	Complete(ctx context.Context, messages []Message, options ...Option) (string, error)

	// Moderate reports whether the text is flagged. A missing moderation
	// configuration makes this a no-op returning false.
	Moderate(ctx context.Context, text string) (bool, error)
}

// OpenAIClient implements Client against the OpenAI API.
type OpenAIClient struct {
	client          *openai.Client
	embeddingModel  string
	chatModel       string
	moderationModel string
}

// NewOpenAIClient builds the process-wide oracle client. An empty API key is
// allowed at construction time; every call then fails with ErrNotConfigured
// (moderation degrades to a no-op instead).
func NewOpenAIClient(apiKey, embeddingModel, chatModel, moderationModel string) *OpenAIClient {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &OpenAIClient{
		client:          client,
		embeddingModel:  embeddingModel,
		chatModel:       chatModel,
		moderationModel: moderationModel,
	}
}

func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.client == nil {
		return nil, ErrNotConfigured
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: cannot embed empty text", ErrEmptyInput)
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.embeddingModel),
		Input: []string{trimmed},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("%w: embedding response missing data", ErrEmptyResponse)
	}
	return resp.Data[0].Embedding, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, options ...Option) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	opts := Options{
		Temperature: 0.3,
		Model:       c.chatModel,
	}
	for _, option := range options {
		option(&opts)
	}

	req := openai.ChatCompletionRequest{
		Model:       opts.Model,
		Temperature: opts.Temperature,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if opts.Schema != nil {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   opts.Schema.Name,
				Schema: opts.Schema.Schema,
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) Moderate(ctx context.Context, text string) (bool, error) {
	trimmed := strings.TrimSpace(text)
	if c.client == nil || c.moderationModel == "" || trimmed == "" {
		return false, nil
	}

	resp, err := c.client.Moderations(ctx, openai.ModerationRequest{
		Model: c.moderationModel,
		Input: trimmed,
	})
	if err != nil {
		return false, err
	}
	for _, result := range resp.Results {
		if result.Flagged {
			return true, nil
		}
	}
	return false, nil
}
