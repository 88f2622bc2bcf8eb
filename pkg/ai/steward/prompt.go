package steward

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are the Seed Steward: an advisor for a single tracked idea ("seed").
Review the seed digest and propose how the seed should evolve.
You can propose: one rewritten summary, new insights, new experiments, and new principles.
You NEVER apply changes yourself and must never claim that you did.
Only propose what the digest supports; omit any list you have nothing for.`

// buildDigestPrompt renders the seed digest as a single user turn. Sections
// appear in fixed order so repeated calls over the same digest produce the
// same prompt.
func buildDigestPrompt(digest Digest) string {
	var prompt strings.Builder

	prompt.WriteString("Seed:\n")
	prompt.WriteString(fmt.Sprintf("Title: %s\n", digest.Seed.Title))
	if digest.Seed.Summary != "" {
		prompt.WriteString(fmt.Sprintf("Summary: %s\n", digest.Seed.Summary))
	}
	if digest.Seed.WhyItMatters != "" {
		prompt.WriteString(fmt.Sprintf("Why it matters: %s\n", digest.Seed.WhyItMatters))
	}
	if digest.Seed.Status != "" {
		prompt.WriteString(fmt.Sprintf("Status: %s\n", digest.Seed.Status))
	}

	if len(digest.Knowledge) > 0 {
		prompt.WriteString("\nKnowledge:\n")
		for i, item := range digest.Knowledge {
			prompt.WriteString(fmt.Sprintf("%d. [%s] %s: %s\n", i+1, item.Type, item.Title, item.Snippet))
		}
	}

	if len(digest.Insights) > 0 {
		prompt.WriteString("\nInsights:\n")
		for i, insight := range digest.Insights {
			prompt.WriteString(fmt.Sprintf("%d. %s", i+1, insight.Summary))
			if insight.Details != "" {
				prompt.WriteString(fmt.Sprintf(" - %s", insight.Details))
			}
			prompt.WriteString("\n")
		}
	}

	if len(digest.Experiments) > 0 {
		prompt.WriteString("\nExperiments:\n")
		for i, experiment := range digest.Experiments {
			prompt.WriteString(fmt.Sprintf("%d. %s (status: %s)", i+1, experiment.Title, experiment.Status))
			if experiment.Hypothesis != "" {
				prompt.WriteString(fmt.Sprintf(" hypothesis: %s", experiment.Hypothesis))
			}
			if experiment.Plan != "" {
				prompt.WriteString(fmt.Sprintf(" plan: %s", experiment.Plan))
			}
			if experiment.ResultSummary != "" {
				prompt.WriteString(fmt.Sprintf(" result: %s", experiment.ResultSummary))
			}
			prompt.WriteString("\n")
		}
	}

	if len(digest.Events) > 0 {
		prompt.WriteString("\nRecent events:\n")
		for i, event := range digest.Events {
			prompt.WriteString(fmt.Sprintf("%d. %s at %s", i+1, event.Type, event.OccurredAt))
			if event.Note != "" {
				prompt.WriteString(fmt.Sprintf(" - %s", event.Note))
			}
			prompt.WriteString("\n")
		}
	}

	prompt.WriteString("\nPropose suggestions for this seed as JSON.")
	return prompt.String()
}
