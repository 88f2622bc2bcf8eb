package grounding

import "strings"

const (
	// MaxSnippetLength bounds every hydrated snippet.
	MaxSnippetLength = 320

	snippetFallback = "Summary unavailable for this item."
)

// snippetSource holds the text candidates hydrated from an owning table
// row. Fields that do not exist for a given item type stay empty.
type snippetSource struct {
	Title     string
	Content   string
	Summary   string
	Statement string
	Details   string
	SourceURL string
}

// buildSnippet picks the first non-blank candidate in preference order,
// falls back to the source URL, then to a fixed placeholder.
func buildSnippet(s snippetSource) string {
	for _, candidate := range []string{s.Content, s.Summary, s.Statement, s.Details} {
		if text := strings.TrimSpace(candidate); text != "" {
			return truncate(text, MaxSnippetLength)
		}
	}
	if url := strings.TrimSpace(s.SourceURL); url != "" {
		return truncate("Source: "+url, MaxSnippetLength)
	}
	return snippetFallback
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
