package graph

import "fmt"

// EndID is the terminal sentinel. It is a reserved id with no node behind it;
// a transition resolving to EndID completes the questionnaire.
const EndID = "END"

// Transition is the edge out of a node: either a fixed next-node id or a
// per-option mapping. Exactly one of the two forms is set.
type Transition struct {
	Fixed    string
	ByOption map[string]string
}

// Fixed builds an unconditional transition to the given node id.
func Fixed(id string) Transition {
	return Transition{Fixed: id}
}

// Conditional builds an option-conditioned transition. The mapping must cover
// every option of the owning node; Validate enforces this.
func Conditional(m map[string]string) Transition {
	return Transition{ByOption: m}
}

// Resolve returns the next node id for the chosen option label.
// The second return is false when a conditional mapping has no entry for the
// label, which on a validated graph indicates a programming error upstream.
func (t Transition) Resolve(option string) (string, bool) {
	if t.ByOption == nil {
		return t.Fixed, true
	}
	next, ok := t.ByOption[option]
	return next, ok
}

// Node is a single question in the questionnaire.
type Node struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Section string   `json:"section"`
	Options []string `json:"options"`
	Next    Transition
}

// OptionIndex returns the position of label in the node's options, or -1.
// Option order is significant: the index is the severity weight used by the
// risk classifier.
func (n *Node) OptionIndex(label string) int {
	for i, opt := range n.Options {
		if opt == label {
			return i
		}
	}
	return -1
}

// Graph is an immutable table of question nodes plus a designated entry id.
type Graph struct {
	entry string
	nodes map[string]*Node
}

// New assembles a graph from the given nodes. It does not validate; call
// Validate once at startup (and in tests) before serving traffic.
func New(entry string, nodes []Node) *Graph {
	g := &Graph{entry: entry, nodes: make(map[string]*Node, len(nodes))}
	for i := range nodes {
		g.nodes[nodes[i].ID] = &nodes[i]
	}
	return g
}

// Entry returns the entry node id.
func (g *Graph) Entry() string {
	return g.entry
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node looks up a node by id. Unknown ids are static-configuration defects,
// not user input, so this panics rather than returning an error.
func (g *Graph) Node(id string) *Node {
	n, ok := g.nodes[id]
	if !ok {
		panic(fmt.Sprintf("graph: unknown node id %q", id))
	}
	return n
}

// Lookup is the non-panicking variant of Node, for validation code.
func (g *Graph) Lookup(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Validate checks the static invariants of the graph:
//
//   - every node has at least two options and a transition
//   - conditional mappings cover exactly the node's own options
//   - every edge targets an existing node or the terminal sentinel
//   - every node is reachable from the entry node
//   - traversal terminates for every combination of answers (no cycles)
//
// A non-nil error means the question table itself is broken and the service
// must not start.
func (g *Graph) Validate() error {
	if _, ok := g.nodes[g.entry]; !ok {
		return fmt.Errorf("entry node %q does not exist", g.entry)
	}

	for id, n := range g.nodes {
		if id == EndID {
			return fmt.Errorf("node %q uses the reserved terminal id", id)
		}
		if len(n.Options) < 2 {
			return fmt.Errorf("node %q has %d options, need at least 2", id, len(n.Options))
		}
		if n.Next.Fixed == "" && n.Next.ByOption == nil {
			return fmt.Errorf("node %q has no transition", id)
		}
		if n.Next.ByOption != nil {
			if len(n.Next.ByOption) != len(n.Options) {
				return fmt.Errorf("node %q: transition covers %d options, node has %d",
					id, len(n.Next.ByOption), len(n.Options))
			}
			for _, opt := range n.Options {
				if _, ok := n.Next.ByOption[opt]; !ok {
					return fmt.Errorf("node %q: no transition for option %q", id, opt)
				}
			}
		}
		for _, target := range n.targets() {
			if target == EndID {
				continue
			}
			if _, ok := g.nodes[target]; !ok {
				return fmt.Errorf("node %q points at unknown node %q", id, target)
			}
		}
	}

	reached := map[string]bool{}
	if err := g.walk(g.entry, map[string]bool{}, reached, 0); err != nil {
		return err
	}
	for id := range g.nodes {
		if !reached[id] {
			return fmt.Errorf("node %q is unreachable from entry %q", id, g.entry)
		}
	}
	return nil
}

// walk does an exhaustive DFS over every answer path, failing on cycles or
// paths longer than the node count.
func (g *Graph) walk(id string, onPath, reached map[string]bool, depth int) error {
	if id == EndID {
		return nil
	}
	if onPath[id] {
		return fmt.Errorf("cycle through node %q", id)
	}
	if depth > len(g.nodes) {
		return fmt.Errorf("path through %q exceeds graph size without terminating", id)
	}
	reached[id] = true
	onPath[id] = true
	defer delete(onPath, id)

	for _, target := range g.nodes[id].targets() {
		if err := g.walk(target, onPath, reached, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// targets returns the distinct next-node ids of a node.
func (n *Node) targets() []string {
	if n.Next.ByOption == nil {
		return []string{n.Next.Fixed}
	}
	seen := make(map[string]bool, len(n.Next.ByOption))
	var out []string
	for _, opt := range n.Options {
		target := n.Next.ByOption[opt]
		if !seen[target] {
			seen[target] = true
			out = append(out, target)
		}
	}
	return out
}
