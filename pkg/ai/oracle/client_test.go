package oracle

import (
	"context"
	"errors"
	"testing"
)

func TestUnconfiguredClient(t *testing.T) {
	client := NewOpenAIClient("", "text-embedding-3-small", "gpt-4o-mini", "omni-moderation-latest")

	if _, err := client.Embed(context.Background(), "some text"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Embed err = %v, want ErrNotConfigured", err)
	}

	if _, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Complete err = %v, want ErrNotConfigured", err)
	}

	// Moderation degrades to a no-op instead of erroring.
	flagged, err := client.Moderate(context.Background(), "some text")
	if err != nil || flagged {
		t.Errorf("Moderate = (%v, %v), want (false, nil)", flagged, err)
	}
}

func TestEmbedRejectsEmptyInput(t *testing.T) {
	// A key makes the client non-nil; the empty-input check fires before
	// any network call.
	client := NewOpenAIClient("test-key", "text-embedding-3-small", "gpt-4o-mini", "")

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := client.Embed(context.Background(), text); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Embed(%q) err = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestModerateSkipsBlankAndUnconfigured(t *testing.T) {
	tests := []struct {
		name   string
		client *OpenAIClient
		text   string
	}{
		{"blank text", NewOpenAIClient("test-key", "e", "c", "m"), "   "},
		{"no moderation model", NewOpenAIClient("test-key", "e", "c", ""), "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagged, err := tt.client.Moderate(context.Background(), tt.text)
			if err != nil || flagged {
				t.Errorf("Moderate = (%v, %v), want (false, nil)", flagged, err)
			}
		})
	}
}
