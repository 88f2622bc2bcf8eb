package copilot

// Lens is a fixed viewpoint that reweights which item types are prioritized
// as grounding context and nudges the oracle's response style. It never
// affects correctness, only relevance ordering.
type Lens string

const (
	LensExplore Lens = "explore"
	LensDistill Lens = "distill"
	LensDesign  Lens = "design"
	LensMirror  Lens = "mirror"
)

// ParseLens validates a caller-supplied lens value.
func ParseLens(value string) (Lens, bool) {
	switch Lens(value) {
	case LensExplore, LensDistill, LensDesign, LensMirror:
		return Lens(value), true
	}
	return "", false
}

// Mode is the requested response mode for a copilot query.
type Mode string

const (
	ModeAsk       Mode = "ask"
	ModeSummarize Mode = "summarize"
	ModeReflect   Mode = "reflect"
	ModePlan      Mode = "plan"
)

func ParseMode(value string) (Mode, bool) {
	switch Mode(value) {
	case ModeAsk, ModeSummarize, ModeReflect, ModePlan:
		return Mode(value), true
	}
	return "", false
}

// Message is one turn of a copilot conversation, caller-supplied and
// round-tripped.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Context is a retrieved grounding snippet. Derived, read-only, rebuilt per
// query.
type Context struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet"`
	Ref     string `json:"ref"` // "table:id"
}

// SuggestionMode tags the structured suggestion union.
type SuggestionMode string

const (
	SuggestionGenericAnswer SuggestionMode = "generic_answer"
	SuggestionSeedProposal  SuggestionMode = "seed_proposal"
	SuggestionInsight       SuggestionMode = "insight"
	SuggestionExperiment    SuggestionMode = "experiment_suggestion"
	SuggestionPrinciple     SuggestionMode = "principle_suggestion"
)

func ParseSuggestionMode(value string) (SuggestionMode, bool) {
	switch SuggestionMode(value) {
	case SuggestionGenericAnswer, SuggestionSeedProposal, SuggestionInsight,
		SuggestionExperiment, SuggestionPrinciple:
		return SuggestionMode(value), true
	}
	return "", false
}

// SeedProposalPayload proposes capturing a new seed.
type SeedProposalPayload struct {
	Title        string `json:"title"`
	Summary      string `json:"summary,omitempty"`
	WhyItMatters string `json:"why_it_matters,omitempty"`
}

// InsightPayload proposes recording an insight. Confidence is clamped to
// [-100, 100] during coercion.
type InsightPayload struct {
	Summary    string   `json:"summary"`
	Details    string   `json:"details,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// ExperimentPayload proposes a new experiment.
type ExperimentPayload struct {
	Title      string `json:"title"`
	Hypothesis string `json:"hypothesis,omitempty"`
	Plan       string `json:"plan,omitempty"`
}

// PrinciplePayload proposes a new principle.
type PrinciplePayload struct {
	Statement string `json:"statement"`
	Category  string `json:"category,omitempty"`
}

// StructuredSuggestion is the tagged union of copilot suggestion variants.
// Exactly the pointer matching Mode is set; every field that survived
// coercion is a trimmed non-empty string.
type StructuredSuggestion struct {
	Mode         SuggestionMode       `json:"mode"`
	Content      string               `json:"content,omitempty"`
	SeedProposal *SeedProposalPayload `json:"seed_proposal,omitempty"`
	Insight      *InsightPayload      `json:"insight,omitempty"`
	Experiment   *ExperimentPayload   `json:"experiment,omitempty"`
	Principle    *PrinciplePayload    `json:"principle,omitempty"`
}
