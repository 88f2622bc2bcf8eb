package steward

import "idea-copilot-be/pkg/ai/copilot"

// Digest is the read-only snapshot of a seed's history handed to the
// steward. The caller truncates fields and caps list lengths before it gets
// here; this package only renders and sends it.
type Digest struct {
	Seed        SeedSummary
	Knowledge   []KnowledgeDigest
	Insights    []InsightDigest
	Experiments []ExperimentDigest
	Events      []EventDigest
}

type SeedSummary struct {
	Title        string
	Summary      string
	WhyItMatters string
	Status       string
}

type KnowledgeDigest struct {
	Title   string
	Type    string
	Snippet string
}

type InsightDigest struct {
	Summary string
	Details string
}

type ExperimentDigest struct {
	Title         string
	Status        string
	Hypothesis    string
	Plan          string
	ResultSummary string
}

type EventDigest struct {
	Type       string
	OccurredAt string
	Note       string
}

// SummaryUpdate proposes rewriting the seed's summary fields.
type SummaryUpdate struct {
	Summary      string `json:"summary"`
	WhyItMatters string `json:"why_it_matters,omitempty"`
}

// Suggestions is the advisory batch the steward produces: at most one
// summary update and up to five entries per list. Nothing here is ever
// applied by this package; the caller owns accept/dismiss.
type Suggestions struct {
	SummaryUpdate         *SummaryUpdate              `json:"summary_update,omitempty"`
	InsightSuggestions    []copilot.InsightPayload    `json:"insight_suggestions,omitempty"`
	ExperimentSuggestions []copilot.ExperimentPayload `json:"experiment_suggestions,omitempty"`
	PrincipleSuggestions  []copilot.PrinciplePayload  `json:"principle_suggestions,omitempty"`
}
