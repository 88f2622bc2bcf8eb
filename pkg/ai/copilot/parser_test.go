package copilot

import (
	"errors"
	"testing"

	"idea-copilot-be/pkg/ai/oracle"
)

func TestParseStructuredResponseGenericAnswer(t *testing.T) {
	raw := `{"answer": "Focus on onboarding first.", "mode": "generic_answer", "structured": {"content": "Focus on onboarding first."}}`

	answer, structured, err := ParseStructuredResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Focus on onboarding first." {
		t.Errorf("answer = %q", answer)
	}
	if structured.Mode != SuggestionGenericAnswer {
		t.Errorf("mode = %s, want generic_answer", structured.Mode)
	}
	if structured.Content != "Focus on onboarding first." {
		t.Errorf("content = %q", structured.Content)
	}
}

func TestParseStructuredResponseInsight(t *testing.T) {
	raw := `{"answer": "Users churn at step 3.", "mode": "insight", "structured": {"summary": "Step 3 causes churn", "details": "Drop-off doubles there.", "confidence": 60}}`

	_, structured, err := ParseStructuredResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if structured.Mode != SuggestionInsight {
		t.Fatalf("mode = %s", structured.Mode)
	}
	if structured.Insight == nil {
		t.Fatal("insight payload is nil")
	}
	if structured.Insight.Summary != "Step 3 causes churn" {
		t.Errorf("summary = %q", structured.Insight.Summary)
	}
	if structured.Insight.Confidence == nil || *structured.Insight.Confidence != 60 {
		t.Errorf("confidence = %v, want 60", structured.Insight.Confidence)
	}
}

func TestParseStructuredResponseConfidenceClamped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{
			name: "above upper bound",
			raw:  `{"answer": "a", "mode": "insight", "structured": {"summary": "s", "confidence": 250}}`,
			want: 100,
		},
		{
			name: "below lower bound",
			raw:  `{"answer": "a", "mode": "insight", "structured": {"summary": "s", "confidence": -500}}`,
			want: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, structured, err := ParseStructuredResponse(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if structured.Insight == nil || structured.Insight.Confidence == nil {
				t.Fatal("expected clamped confidence, got nil")
			}
			if *structured.Insight.Confidence != tt.want {
				t.Errorf("confidence = %v, want %v", *structured.Insight.Confidence, tt.want)
			}
		})
	}
}

func TestParseStructuredResponseUnknownModeFallsBack(t *testing.T) {
	raw := `{"answer": "hello", "mode": "prophecy", "structured": {"content": "hello"}}`

	_, structured, err := ParseStructuredResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if structured.Mode != SuggestionGenericAnswer {
		t.Errorf("mode = %s, want generic_answer", structured.Mode)
	}
}

func TestParseStructuredResponseMissingRequiredFieldDegrades(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"seed proposal without title", `{"answer": "a", "mode": "seed_proposal", "structured": {"summary": "s"}}`},
		{"insight without summary", `{"answer": "a", "mode": "insight", "structured": {"details": "d"}}`},
		{"experiment with blank title", `{"answer": "a", "mode": "experiment_suggestion", "structured": {"title": "   "}}`},
		{"principle without statement", `{"answer": "a", "mode": "principle_suggestion", "structured": {"category": "c"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, structured, err := ParseStructuredResponse(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if structured.Mode != SuggestionGenericAnswer {
				t.Errorf("mode = %s, want generic_answer", structured.Mode)
			}
			if structured.SeedProposal != nil || structured.Insight != nil ||
				structured.Experiment != nil || structured.Principle != nil {
				t.Error("expected all typed payloads to be nil")
			}
		})
	}
}

func TestParseStructuredResponseRecoversWrappedJSON(t *testing.T) {
	raw := "Here is my answer:\n" +
		`{"answer": "recovered", "mode": "generic_answer", "structured": {"content": "recovered"}}` +
		"\nLet me know if you need more."

	answer, structured, err := ParseStructuredResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "recovered" {
		t.Errorf("answer = %q", answer)
	}
	if structured.Mode != SuggestionGenericAnswer {
		t.Errorf("mode = %s", structured.Mode)
	}
}

func TestParseStructuredResponseErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty content", "   ", oracle.ErrEmptyResponse},
		{"plain prose", "no json here at all", oracle.ErrUnparsableResponse},
		{"unbalanced braces", `{"answer": "x"`, oracle.ErrUnparsableResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseStructuredResponse(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{100, 100},
		{-100, -100},
		{100.5, 100},
		{-250, -100},
		{42.5, 42.5},
	}

	for _, tt := range tests {
		if got := ClampConfidence(tt.in); got != tt.want {
			t.Errorf("ClampConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
