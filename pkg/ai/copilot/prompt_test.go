package copilot

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptSections(t *testing.T) {
	params := PromptParams{
		Mode:             ModePlan,
		Lens:             LensDesign,
		WorkspaceSummary: "Workspace contains 3 seeds.",
		SeedSummary:      "Faster onboarding\nCut signup to two steps.",
		Principles:       []string{"Ship weekly", "Measure before deciding"},
		Contexts: []Context{
			{Type: "knowledge", Title: "Signup funnel", Snippet: "Drop-off at step 3.", Ref: "knowledge_items:abc"},
		},
	}

	prompt := BuildSystemPrompt(params)

	for _, want := range []string{
		"Mode: plan.",
		"Lens: design.",
		"Workspace contains 3 seeds.",
		"Seed summary:",
		"1. Ship weekly",
		"2. Measure before deciding",
		"Drop-off at step 3.",
		"Source: knowledge_items:abc",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	params := PromptParams{
		Mode:       ModeAsk,
		Lens:       LensExplore,
		Principles: []string{"a", "b"},
		Contexts:   []Context{{Type: "insight", Snippet: "s", Ref: "insights:1"}},
	}

	if BuildSystemPrompt(params) != BuildSystemPrompt(params) {
		t.Error("same params produced different prompts")
	}
}

func TestBuildSystemPromptEmptyContext(t *testing.T) {
	prompt := BuildSystemPrompt(PromptParams{Mode: ModeAsk, Lens: LensExplore})

	if !strings.Contains(prompt, "No workspace context was retrieved for this query.") {
		t.Error("missing empty-context notice")
	}
	if strings.Contains(prompt, "Context snippets:") {
		t.Error("unexpected context section for empty input")
	}
}
