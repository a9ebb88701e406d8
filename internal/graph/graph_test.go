package graph

import (
	"strings"
	"testing"
)

func TestWellnessGraphIsValid(t *testing.T) {
	if err := Wellness.Validate(); err != nil {
		t.Fatalf("built-in questionnaire failed validation: %v", err)
	}
}

// TestWellnessGraphTerminates walks every option of every reachable node and
// proves each node reaches the terminal sentinel within the graph size.
// Transitions depend only on the current node and option, so each node's
// depth is computed once and memoized; that still covers every combination
// of answers without enumerating the exponential path set.
func TestWellnessGraphTerminates(t *testing.T) {
	depths := map[string]int{}
	var depthFrom func(id string, onPath map[string]bool) int
	depthFrom = func(id string, onPath map[string]bool) int {
		if id == EndID {
			return 0
		}
		if d, ok := depths[id]; ok {
			return d
		}
		if onPath[id] {
			t.Fatalf("cycle detected through node %q", id)
		}
		onPath[id] = true
		defer delete(onPath, id)

		node, ok := Wellness.Lookup(id)
		if !ok {
			t.Fatalf("edge points at unknown node %q", id)
		}
		longest := 0
		for _, opt := range node.Options {
			next, ok := node.Next.Resolve(opt)
			if !ok {
				t.Fatalf("node %q has no transition for option %q", id, opt)
			}
			if d := depthFrom(next, onPath); d > longest {
				longest = d
			}
		}
		depths[id] = longest + 1
		return longest + 1
	}

	depth := depthFrom(Wellness.Entry(), map[string]bool{})
	if depth > Wellness.Len() {
		t.Errorf("longest path %d exceeds node count %d", depth, Wellness.Len())
	}
}

func TestValidateRejectsBrokenGraphs(t *testing.T) {
	twoOpts := []string{"Yes", "No"}

	testCases := []struct {
		name    string
		entry   string
		nodes   []Node
		wantErr string
	}{
		{
			name:    "missing entry",
			entry:   "nope",
			nodes:   []Node{{ID: "a", Options: twoOpts, Next: Fixed(EndID)}},
			wantErr: "entry node",
		},
		{
			name:  "incomplete conditional mapping",
			entry: "a",
			nodes: []Node{
				{ID: "a", Options: twoOpts, Next: Conditional(map[string]string{"Yes": EndID})},
			},
			wantErr: "covers 1 options",
		},
		{
			name:  "mapping for unknown option",
			entry: "a",
			nodes: []Node{
				{ID: "a", Options: twoOpts, Next: Conditional(map[string]string{"Yes": EndID, "Maybe": EndID})},
			},
			wantErr: "no transition for option",
		},
		{
			name:  "edge to unknown node",
			entry: "a",
			nodes: []Node{
				{ID: "a", Options: twoOpts, Next: Fixed("ghost")},
			},
			wantErr: "unknown node",
		},
		{
			name:  "cycle",
			entry: "a",
			nodes: []Node{
				{ID: "a", Options: twoOpts, Next: Fixed("b")},
				{ID: "b", Options: twoOpts, Next: Conditional(map[string]string{"Yes": "a", "No": EndID})},
			},
			wantErr: "cycle",
		},
		{
			name:  "unreachable node",
			entry: "a",
			nodes: []Node{
				{ID: "a", Options: twoOpts, Next: Fixed(EndID)},
				{ID: "b", Options: twoOpts, Next: Fixed(EndID)},
			},
			wantErr: "unreachable",
		},
		{
			name:  "single option node",
			entry: "a",
			nodes: []Node{
				{ID: "a", Options: []string{"Only"}, Next: Fixed(EndID)},
			},
			wantErr: "need at least 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New(tc.entry, tc.nodes).Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestOptionIndex(t *testing.T) {
	node := Wellness.Node(QSelfHarmThoughts)

	if idx := node.OptionIndex("Not at all"); idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
	if idx := node.OptionIndex("Nearly every day"); idx != 3 {
		t.Errorf("expected index 3, got %d", idx)
	}
	if idx := node.OptionIndex("Maybe"); idx != -1 {
		t.Errorf("expected -1 for unknown option, got %d", idx)
	}
}

func TestNodePanicsOnUnknownID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown node id")
		}
	}()
	Wellness.Node("no-such-question")
}

func TestConditionalResolve(t *testing.T) {
	node := Wellness.Node(QAcademicPressure)

	testCases := []struct {
		option string
		want   string
	}{
		{"Low", QWorkload},
		{"Moderate", QWorkload},
		{"High", QSourceOfPressure},
		{"Very High", QSourceOfPressure},
	}
	for _, tc := range testCases {
		next, ok := node.Next.Resolve(tc.option)
		if !ok {
			t.Fatalf("no transition for %q", tc.option)
		}
		if next != tc.want {
			t.Errorf("option %q: expected next %q, got %q", tc.option, tc.want, next)
		}
	}

	if _, ok := node.Next.Resolve("Unmapped"); ok {
		t.Error("expected resolve to fail for unmapped option")
	}
}
