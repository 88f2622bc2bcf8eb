package copilot

import "sort"

// lensContextPriority maps each lens to the item types it privileges as
// grounding context, most relevant first. Types outside the table sort after
// every listed type.
var lensContextPriority = map[Lens][]string{
	LensExplore: {"knowledge", "insight", "experiment", "principle"},
	LensDistill: {"insight", "principle", "knowledge", "experiment"},
	LensDesign:  {"experiment", "knowledge", "insight", "principle"},
	LensMirror:  {"principle", "insight", "knowledge", "experiment"},
}

// PrioritizeContexts reorders retrieved contexts by the lens priority table.
// The sort is stable: relative similarity order is preserved among items of
// the same priority class. The input slice is not mutated.
func PrioritizeContexts(contexts []Context, lens Lens) []Context {
	order := lensContextPriority[lens]
	fallback := len(order) + 1

	rank := func(itemType string) int {
		for i, t := range order {
			if t == itemType {
				return i
			}
		}
		return fallback
	}

	out := make([]Context, len(contexts))
	copy(out, contexts)
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Type) < rank(out[j].Type)
	})
	return out
}
