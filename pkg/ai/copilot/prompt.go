package copilot

import (
	"fmt"
	"strings"
)

// PromptParams carries everything the system prompt is assembled from.
type PromptParams struct {
	Mode             Mode
	Lens             Lens
	WorkspaceSummary string
	SeedSummary      string
	Principles       []string
	Contexts         []Context
}

var lensDirectives = map[Lens]string{
	LensExplore: "Lens: explore. Favor breadth, surface adjacent knowledge, and propose directions worth investigating.",
	LensDistill: "Lens: distill. Compress what is known into crisp insights and durable principles.",
	LensDesign:  "Lens: design. Favor concrete experiments, actionable plans, and testable next steps.",
	LensMirror:  "Lens: mirror. Reflect the team's own principles and insights back at them; challenge inconsistencies.",
}

var modeDirectives = map[Mode]string{
	ModeAsk:       "Mode: ask. Answer the question directly.",
	ModeSummarize: "Mode: summarize. Synthesize the relevant material into a short summary.",
	ModeReflect:   "Mode: reflect. Examine what the workspace has learned and what it implies.",
	ModePlan:      "Mode: plan. Produce concrete, ordered next steps.",
}

// promptBuilder assembles the deterministic system prompt for a copilot
// query. Pure string construction; no oracle call.
type promptBuilder struct {
	params PromptParams
}

func newPromptBuilder(params PromptParams) *promptBuilder {
	return &promptBuilder{params: params}
}

func (b *promptBuilder) Build() string {
	var prompt strings.Builder

	b.writeRole(&prompt)
	b.writeSummaries(&prompt)
	b.writePrinciples(&prompt)
	b.writeContexts(&prompt)
	b.writeClosingInstructions(&prompt)

	return prompt.String()
}

func (b *promptBuilder) writeRole(prompt *strings.Builder) {
	prompt.WriteString("You are the workspace copilot: an assistant grounded in the team's captured ideas.\n")
	prompt.WriteString(modeDirectives[b.params.Mode])
	prompt.WriteString("\n")
	prompt.WriteString(lensDirectives[b.params.Lens])
	prompt.WriteString("\n\n")
}

func (b *promptBuilder) writeSummaries(prompt *strings.Builder) {
	if b.params.WorkspaceSummary != "" {
		prompt.WriteString("Workspace summary:\n")
		prompt.WriteString(b.params.WorkspaceSummary)
		prompt.WriteString("\n\n")
	}
	if b.params.SeedSummary != "" {
		prompt.WriteString("Seed summary:\n")
		prompt.WriteString(b.params.SeedSummary)
		prompt.WriteString("\n\n")
	}
}

func (b *promptBuilder) writePrinciples(prompt *strings.Builder) {
	if len(b.params.Principles) == 0 {
		return
	}
	prompt.WriteString("Active principles:\n")
	for i, principle := range b.params.Principles {
		prompt.WriteString(fmt.Sprintf("%d. %s\n", i+1, principle))
	}
	prompt.WriteString("\n")
}

func (b *promptBuilder) writeContexts(prompt *strings.Builder) {
	if len(b.params.Contexts) == 0 {
		prompt.WriteString("No workspace context was retrieved for this query.\n\n")
		return
	}
	prompt.WriteString("Context snippets:\n")
	for i, ctx := range b.params.Contexts {
		label := ctx.Type
		if ctx.Title != "" {
			label = fmt.Sprintf("%s · %s", ctx.Type, ctx.Title)
		}
		prompt.WriteString(fmt.Sprintf("[%d] (%s) %s\n", i+1, label, ctx.Snippet))
		prompt.WriteString(fmt.Sprintf("Source: %s\n", ctx.Ref))
	}
	prompt.WriteString("\n")
}

func (b *promptBuilder) writeClosingInstructions(prompt *strings.Builder) {
	prompt.WriteString("Ground every claim in the snippets and summaries above.\n")
	prompt.WriteString("If the context does not contain the information needed, say \"I am not sure\" and recommend next steps.\n")
	prompt.WriteString("Never fabricate citations; only reference the sources listed above.\n")
	prompt.WriteString("Be concise, structured, and actionable.")
}

// BuildSystemPrompt assembles the labeled prompt sections in fixed order.
func BuildSystemPrompt(params PromptParams) string {
	return newPromptBuilder(params).Build()
}
