package engine

import (
	"errors"
	"fmt"

	"wellness-service/internal/graph"
)

var (
	// ErrSessionComplete is returned when an answer arrives after the
	// terminal node was reached.
	ErrSessionComplete = errors.New("session already complete")

	// ErrInvalidOption is returned when the submitted label is not one of
	// the current node's options. Recoverable: re-prompt the same node.
	ErrInvalidOption = errors.New("option is not valid for the current question")

	// ErrBrokenTransition means a conditional mapping had no entry for the
	// chosen option. A validated graph cannot produce this.
	ErrBrokenTransition = errors.New("no transition for the chosen option")
)

// Manager drives sessions through the question graph one answer at a time.
// All operations are synchronous; a session is owned by a single caller.
type Manager struct {
	graph *graph.Graph
}

// NewManager creates a manager over the given graph, defaulting to the
// built-in wellness questionnaire.
func NewManager(g *graph.Graph) *Manager {
	if g == nil {
		g = graph.Wellness
	}
	return &Manager{graph: g}
}

// Graph exposes the underlying question graph for display purposes.
func (m *Manager) Graph() *graph.Graph {
	return m.graph
}

// NewSession returns a fresh session pointed at the entry node.
func (m *Manager) NewSession() *Session {
	return &Session{
		CurrentNodeID: m.graph.Entry(),
		Answers:       []Answer{},
		Status:        StatusInProgress,
	}
}

// Reset discards all traversal state in place, leaving the session as if it
// had just been created. No partial state survives.
func (m *Manager) Reset(session *Session) {
	session.CurrentNodeID = m.graph.Entry()
	session.Answers = []Answer{}
	session.Status = StatusInProgress
}

// CurrentNode returns the node the session is waiting on, or nil when the
// session is complete.
func (m *Manager) CurrentNode(session *Session) *graph.Node {
	if session.Status == StatusCompleted || session.CurrentNodeID == graph.EndID {
		return nil
	}
	return m.graph.Node(session.CurrentNodeID)
}

// SubmitAnswer records the chosen option for the current node and advances
// the session along the matching edge. On reaching the terminal sentinel the
// session is marked completed and CurrentNodeID holds the sentinel.
func (m *Manager) SubmitAnswer(session *Session, optionLabel string) (*SubmitResult, error) {
	if session.Status == StatusCompleted {
		return nil, ErrSessionComplete
	}

	node := m.graph.Node(session.CurrentNodeID)
	idx := node.OptionIndex(optionLabel)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q at %q", ErrInvalidOption, optionLabel, node.ID)
	}

	next, ok := node.Next.Resolve(optionLabel)
	if !ok {
		// Configuration defect; surfaced loudly instead of guessing an edge.
		return nil, fmt.Errorf("%w: %q at %q", ErrBrokenTransition, optionLabel, node.ID)
	}

	session.Answers = append(session.Answers, Answer{
		QuestionID:  node.ID,
		OptionLabel: optionLabel,
		OptionIndex: idx,
	})
	session.CurrentNodeID = next

	result := &SubmitResult{NextNodeID: next}
	if next == graph.EndID {
		session.Status = StatusCompleted
		result.IsComplete = true
	}
	return result, nil
}
