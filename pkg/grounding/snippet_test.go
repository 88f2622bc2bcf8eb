package grounding

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildSnippetPreferenceOrder(t *testing.T) {
	tests := []struct {
		name   string
		source snippetSource
		want   string
	}{
		{
			name:   "content wins over everything",
			source: snippetSource{Content: "content", Summary: "summary", Statement: "statement", Details: "details", SourceURL: "http://x"},
			want:   "content",
		},
		{
			name:   "summary when content blank",
			source: snippetSource{Content: "   ", Summary: "summary", Details: "details"},
			want:   "summary",
		},
		{
			name:   "statement before details",
			source: snippetSource{Statement: "statement", Details: "details"},
			want:   "statement",
		},
		{
			name:   "details as last text candidate",
			source: snippetSource{Details: "details"},
			want:   "details",
		},
		{
			name:   "source url fallback",
			source: snippetSource{Title: "only a title", SourceURL: "https://example.com/doc"},
			want:   "Source: https://example.com/doc",
		},
		{
			name:   "placeholder when nothing usable",
			source: snippetSource{Title: "only a title"},
			want:   "Summary unavailable for this item.",
		},
		{
			name:   "whitespace trimmed",
			source: snippetSource{Content: "  padded  "},
			want:   "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSnippet(tt.source); got != tt.want {
				t.Errorf("buildSnippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSnippetTruncates(t *testing.T) {
	long := strings.Repeat("é", MaxSnippetLength+50)

	got := buildSnippet(snippetSource{Content: long})

	if utf8.RuneCountInString(got) != MaxSnippetLength {
		t.Errorf("rune count = %d, want %d", utf8.RuneCountInString(got), MaxSnippetLength)
	}
	if !strings.HasPrefix(long, got) {
		t.Error("truncation changed the prefix")
	}
}

func TestBuildSnippetShortTextUntouched(t *testing.T) {
	if got := buildSnippet(snippetSource{Content: "short"}); got != "short" {
		t.Errorf("got %q", got)
	}
}
