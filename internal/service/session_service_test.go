package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wellness-service/internal/graph"
	"wellness-service/internal/models"
	"wellness-service/internal/plan"
	"wellness-service/internal/risk"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeSessionStore keeps sessions in memory. FindByID hands out the live
// pointer, so state mutated by the service is what later reads see.
type fakeSessionStore struct {
	sessions map[string]*models.WellnessSession
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*models.WellnessSession{}}
}

func (f *fakeSessionStore) FindByID(_ context.Context, id string) (*models.WellnessSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	return s, nil
}

func (f *fakeSessionStore) FindByUser(_ context.Context, userID string) ([]models.WellnessSession, error) {
	var out []models.WellnessSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) Create(_ context.Context, s *models.WellnessSession) error {
	f.nextID++
	s.ID = fmt.Sprintf("session-%d", f.nextID)
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionStore) Update(_ context.Context, id string, _ bson.M) error {
	if _, ok := f.sessions[id]; !ok {
		return errors.New("session not found")
	}
	return nil
}

// calmPath answers every question with its mildest option.
var calmPath = []string{
	"Low", "Manageable", "Never", "Not at all",
	"Single", "Content", "Very Satisfied", "Yes, several",
	"Very Good", "Positive", "Never", "Never",
	"Not at all", "Not at all", "Not at all", "Not at all",
}

func completeSession(t *testing.T, s *SessionService, userID string) *models.WellnessSession {
	t.Helper()
	ctx := context.Background()
	session, err := s.CreateSession(ctx, userID)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	for _, option := range calmPath {
		if _, _, err := s.SubmitAnswer(ctx, session.ID, option); err != nil {
			t.Fatalf("SubmitAnswer(%q) failed: %v", option, err)
		}
	}
	return session
}

func TestListUserSessions(t *testing.T) {
	store := newFakeSessionStore()
	s := NewSessionService(store, &fakeLLM{reply: "ok"})
	ctx := context.Background()

	if _, err := s.CreateSession(ctx, "user-a"); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := s.CreateSession(ctx, "user-a"); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := s.CreateSession(ctx, "user-b"); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	sessions, err := s.ListUserSessions(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListUserSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions for user-a, got %d", len(sessions))
	}
	for _, sess := range sessions {
		if sess.UserID != "user-a" {
			t.Errorf("history leaked session of %q", sess.UserID)
		}
	}
}

func TestSubmitAnswerClassifiesOnCompletion(t *testing.T) {
	store := newFakeSessionStore()
	s := NewSessionService(store, &fakeLLM{reply: "ok"})
	ctx := context.Background()

	session, err := s.CreateSession(ctx, "user-a")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	for i, option := range calmPath {
		result, next, err := s.SubmitAnswer(ctx, session.ID, option)
		if err != nil {
			t.Fatalf("SubmitAnswer(%q) failed: %v", option, err)
		}
		last := i == len(calmPath)-1
		if result.IsComplete != last {
			t.Fatalf("answer %d: IsComplete=%v, want %v", i, result.IsComplete, last)
		}
		if last && next != nil {
			t.Errorf("completion still returned a next question %q", next.ID)
		}
		if !last && next == nil {
			t.Fatalf("answer %d returned no next question", i)
		}
	}

	stored := store.sessions[session.ID]
	if stored.Risk == nil {
		t.Fatal("completion did not store a classification")
	}
	if stored.Risk.Level != risk.LevelLow {
		t.Errorf("level %q, want %q", stored.Risk.Level, risk.LevelLow)
	}
	if stored.EndTime.IsZero() {
		t.Error("completion did not stamp the end time")
	}

	p, err := s.GetPlan(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetPlan failed: %v", err)
	}
	if p.Level != risk.LevelLow {
		t.Errorf("plan level %q, want %q", p.Level, risk.LevelLow)
	}
}

func TestGetPlanBeforeCompletion(t *testing.T) {
	store := newFakeSessionStore()
	s := NewSessionService(store, &fakeLLM{reply: "ok"})

	session, err := s.CreateSession(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := s.GetPlan(context.Background(), session.ID); err == nil {
		t.Error("expected GetPlan to fail on an in-progress session")
	}
}

func TestResetSessionClearsEverything(t *testing.T) {
	store := newFakeSessionStore()
	s := NewSessionService(store, &fakeLLM{reply: "ok"})
	ctx := context.Background()

	session := completeSession(t, s, "user-a")
	if err := s.ReportLocationDenied(session.ID); err != nil {
		t.Fatalf("ReportLocationDenied failed: %v", err)
	}
	if state, _, _ := s.CounselorLookupStatus(session.ID); state != plan.LookupError {
		t.Fatalf("lookup state %q before reset, want %q", state, plan.LookupError)
	}

	if _, err := s.ResetSession(ctx, session.ID); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}

	stored := store.sessions[session.ID]
	if stored.State.CurrentNodeID != graph.QAcademicPressure {
		t.Errorf("reset left session at %q", stored.State.CurrentNodeID)
	}
	if len(stored.State.Answers) != 0 {
		t.Errorf("reset left %d answers behind", len(stored.State.Answers))
	}
	if stored.Risk != nil {
		t.Error("reset left the classification behind")
	}
	if !stored.EndTime.IsZero() {
		t.Error("reset left the end time behind")
	}
	if state, counselors, _ := s.CounselorLookupStatus(session.ID); state != plan.LookupIdle || len(counselors) != 0 {
		t.Errorf("reset left the lookup at %q with %d counselors", state, len(counselors))
	}
}

func TestWellnessPlanTextFallsBack(t *testing.T) {
	store := newFakeSessionStore()
	s := NewSessionService(store, &fakeLLM{err: errors.New("connection refused")})

	session := completeSession(t, s, "user-a")
	text, err := s.WellnessPlanText(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("WellnessPlanText must not surface the LLM error, got %v", err)
	}
	if text != plan.WellnessPlanFallback {
		t.Errorf("got %q, want the fixed fallback", text)
	}
}
