package engine

// Status of a quiz session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Answer records one choice for one visited question. Answers are appended,
// never edited in place; a reset discards the whole slice.
type Answer struct {
	QuestionID  string `bson:"question_id" json:"question_id"`
	OptionLabel string `bson:"option_label" json:"option_label"`
	OptionIndex int    `bson:"option_index" json:"option_index"`
}

// Session is the traversal state of one questionnaire run. CurrentNodeID is
// either a graph node id or the terminal sentinel once completed.
type Session struct {
	CurrentNodeID string   `bson:"current_node_id" json:"current_node_id"`
	Answers       []Answer `bson:"answers" json:"answers"`
	Status        Status   `bson:"status" json:"status"`
}

// Answered reports whether the session holds an answer for the question and
// returns it if so. Insertion order is traversal order, so a linear scan is
// also the cheapest lookup for a graph this size.
func (s *Session) Answered(questionID string) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// SubmitResult tells the caller what to show next after an answer.
type SubmitResult struct {
	NextNodeID string `json:"next_node_id"`
	IsComplete bool   `json:"is_complete"`
}
