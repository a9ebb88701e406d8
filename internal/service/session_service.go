package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"wellness-service/internal/ai"
	"wellness-service/internal/engine"
	"wellness-service/internal/graph"
	"wellness-service/internal/models"
	"wellness-service/internal/plan"
	"wellness-service/internal/risk"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionView is what the client needs to render the current question.
type QuestionView struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Section  string   `json:"section"`
	Options  []string `json:"options"`
	Answered int      `json:"answered"`
	Total    int      `json:"total"`
}

// SessionStore is the persistence surface the session service needs.
// *repository.SessionRepository is the production implementation.
type SessionStore interface {
	FindByID(ctx context.Context, id string) (*models.WellnessSession, error)
	FindByUser(ctx context.Context, userID string) ([]models.WellnessSession, error)
	Create(ctx context.Context, session *models.WellnessSession) error
	Update(ctx context.Context, id string, update bson.M) error
}

// SessionService drives wellness sessions: traversal, classification on
// completion, plan assembly and the counselor lookup sub-operations.
type SessionService struct {
	Repo    SessionStore
	manager *engine.Manager
	llm     ai.TextCompletionClient

	mu      sync.Mutex
	lookups map[string]*plan.Lookup
}

func NewSessionService(repo SessionStore, llm ai.TextCompletionClient) *SessionService {
	return &SessionService{
		Repo:    repo,
		manager: engine.NewManager(nil),
		llm:     llm,
		lookups: make(map[string]*plan.Lookup),
	}
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.WellnessSession, error) {
	return s.Repo.FindByID(ctx, id)
}

// ListUserSessions returns a user's questionnaire history.
func (s *SessionService) ListUserSessions(ctx context.Context, userID string) ([]models.WellnessSession, error) {
	return s.Repo.FindByUser(ctx, userID)
}

// CreateSession starts a new questionnaire run at the entry node.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*models.WellnessSession, error) {
	session := &models.WellnessSession{
		UserID:    userID,
		StartTime: time.Now(),
		State:     *s.manager.NewSession(),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CurrentQuestion returns the node the session is waiting on, or nil when
// the questionnaire is complete.
func (s *SessionService) CurrentQuestion(ctx context.Context, sessionID string) (*QuestionView, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	node := s.manager.CurrentNode(&session.State)
	if node == nil {
		return nil, nil
	}
	return s.view(node, &session.State), nil
}

func (s *SessionService) view(node *graph.Node, state *engine.Session) *QuestionView {
	return &QuestionView{
		ID:       node.ID,
		Prompt:   node.Prompt,
		Section:  node.Section,
		Options:  node.Options,
		Answered: len(state.Answers),
		Total:    s.manager.Graph().Len(),
	}
}

// SubmitAnswer advances the session one step. On reaching the terminal node
// the risk classification is computed exactly once and stored with the
// session.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, optionLabel string) (*engine.SubmitResult, *QuestionView, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.manager.SubmitAnswer(&session.State, optionLabel)
	if err != nil {
		return nil, nil, err
	}

	update := bson.M{"state": session.State}
	if result.IsComplete {
		classified := risk.Classify(session.State.Answers)
		session.Risk = &classified
		session.EndTime = time.Now()
		update["risk"] = session.Risk
		update["end_time"] = session.EndTime
	}
	if err := s.Repo.Update(ctx, sessionID, update); err != nil {
		return nil, nil, err
	}

	var next *QuestionView
	if !result.IsComplete {
		next = s.view(s.manager.Graph().Node(result.NextNodeID), &session.State)
	}
	return result, next, nil
}

// ResetSession discards all traversal state and any pending counselor
// lookup, leaving the session back at the entry node.
func (s *SessionService) ResetSession(ctx context.Context, sessionID string) (*models.WellnessSession, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.manager.Reset(&session.State)
	session.Risk = nil
	session.EndTime = time.Time{}

	update := bson.M{"state": session.State, "risk": nil, "end_time": session.EndTime}
	if err := s.Repo.Update(ctx, sessionID, update); err != nil {
		return nil, err
	}

	s.lookup(sessionID).Reset()
	return session, nil
}

// GetPlan assembles the dispatcher output for a completed session.
func (s *SessionService) GetPlan(ctx context.Context, sessionID string) (*plan.Plan, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Risk == nil {
		return nil, fmt.Errorf("session %s is not completed yet", sessionID)
	}
	p := plan.Dispatch(*session.Risk)
	return &p, nil
}

// WellnessPlanText asks the AI collaborator for the free-text elaboration.
// Failures degrade to the fixed supportive fallback, never an error page.
func (s *SessionService) WellnessPlanText(ctx context.Context, sessionID string) (string, error) {
	p, err := s.GetPlan(ctx, sessionID)
	if err != nil {
		return "", err
	}
	text, err := s.llm.Complete(ctx, plan.WellnessPlanPrompt(*p), ai.Options{})
	if err != nil {
		log.Printf("wellness plan generation failed: %v", err)
		return plan.WellnessPlanFallback, nil
	}
	return text, nil
}

// lookup returns the per-session lookup state machine, creating it lazily.
func (s *SessionService) lookup(sessionID string) *plan.Lookup {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lookups[sessionID]
	if !ok {
		l = plan.NewLookup()
		s.lookups[sessionID] = l
	}
	return l
}

// ReportLocationDenied records a geolocation denial for a fresh attempt, so
// the error state and instructional message are queryable like any other
// outcome. The static hotlines are unaffected.
func (s *SessionService) ReportLocationDenied(sessionID string) error {
	l := s.lookup(sessionID)
	gen, err := l.Begin()
	if err != nil {
		return err
	}
	l.LocationDenied(gen)
	return nil
}

// FindCounselors runs one counselor lookup attempt: mark the location as
// acquired, fetch the AI listing in the background, parse and store. The
// generation token makes a completion that lands after a reset (or a newer
// attempt) a no-op.
func (s *SessionService) FindCounselors(sessionID string, latitude, longitude float64) error {
	l := s.lookup(sessionID)
	gen, err := l.Begin()
	if err != nil {
		return err
	}
	if !l.LocationAcquired(gen) {
		return plan.ErrLookupInFlight
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		text, err := s.llm.Complete(ctx, plan.CounselorPrompt(latitude, longitude), ai.Options{})
		if err != nil {
			log.Printf("counselor lookup failed: %v", err)
			l.Fail(gen)
			return
		}
		l.Complete(gen, plan.ParseCounselors(text))
	}()
	return nil
}

// CounselorLookupStatus reports the lookup state machine for a session.
func (s *SessionService) CounselorLookupStatus(sessionID string) (plan.LookupState, []plan.Counselor, string) {
	return s.lookup(sessionID).Snapshot()
}
