package copilot

import (
	"testing"
)

func TestParseLens(t *testing.T) {
	tests := []struct {
		value  string
		want   Lens
		wantOk bool
	}{
		{"explore", LensExplore, true},
		{"distill", LensDistill, true},
		{"design", LensDesign, true},
		{"mirror", LensMirror, true},
		{"", "", false},
		{"Explore", "", false},
		{"zoom", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLens(tt.value)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseLens(%q) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		value  string
		want   Mode
		wantOk bool
	}{
		{"ask", ModeAsk, true},
		{"summarize", ModeSummarize, true},
		{"reflect", ModeReflect, true},
		{"plan", ModePlan, true},
		{"", "", false},
		{"answer", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.value)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseMode(%q) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestPrioritizeContexts(t *testing.T) {
	// Two entries per type, interleaved, so stability within a priority
	// class is observable.
	contexts := []Context{
		{Type: "principle", Ref: "principles:p1"},
		{Type: "knowledge", Ref: "knowledge_items:k1"},
		{Type: "insight", Ref: "insights:i1"},
		{Type: "experiment", Ref: "experiments:e1"},
		{Type: "knowledge", Ref: "knowledge_items:k2"},
		{Type: "insight", Ref: "insights:i2"},
	}

	tests := []struct {
		name     string
		lens     Lens
		wantRefs []string
	}{
		{
			name: "explore privileges knowledge first",
			lens: LensExplore,
			wantRefs: []string{
				"knowledge_items:k1", "knowledge_items:k2",
				"insights:i1", "insights:i2",
				"experiments:e1",
				"principles:p1",
			},
		},
		{
			name: "distill privileges insights and principles",
			lens: LensDistill,
			wantRefs: []string{
				"insights:i1", "insights:i2",
				"principles:p1",
				"knowledge_items:k1", "knowledge_items:k2",
				"experiments:e1",
			},
		},
		{
			name: "design privileges experiments",
			lens: LensDesign,
			wantRefs: []string{
				"experiments:e1",
				"knowledge_items:k1", "knowledge_items:k2",
				"insights:i1", "insights:i2",
				"principles:p1",
			},
		},
		{
			name: "mirror privileges principles",
			lens: LensMirror,
			wantRefs: []string{
				"principles:p1",
				"insights:i1", "insights:i2",
				"knowledge_items:k1", "knowledge_items:k2",
				"experiments:e1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrioritizeContexts(contexts, tt.lens)
			if len(got) != len(tt.wantRefs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantRefs))
			}
			for i, want := range tt.wantRefs {
				if got[i].Ref != want {
					t.Errorf("pos %d = %s, want %s", i, got[i].Ref, want)
				}
			}
		})
	}

	// Input order must survive prioritization untouched.
	if contexts[0].Ref != "principles:p1" || contexts[5].Ref != "insights:i2" {
		t.Error("PrioritizeContexts mutated its input slice")
	}
}

func TestPrioritizeContextsUnknownType(t *testing.T) {
	contexts := []Context{
		{Type: "mystery", Ref: "a"},
		{Type: "knowledge", Ref: "b"},
		{Type: "mystery", Ref: "c"},
	}

	got := PrioritizeContexts(contexts, LensExplore)

	wantRefs := []string{"b", "a", "c"}
	for i, want := range wantRefs {
		if got[i].Ref != want {
			t.Errorf("pos %d = %s, want %s", i, got[i].Ref, want)
		}
	}
}
