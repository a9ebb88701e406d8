package risk

import (
	"testing"

	"wellness-service/internal/engine"
	"wellness-service/internal/graph"
)

func screeningAnswers(sleep, burnout, down, interest, anxiety, selfHarm int) []engine.Answer {
	return []engine.Answer{
		{QuestionID: graph.QSleepQuality, OptionIndex: sleep},
		{QuestionID: graph.QBurnoutFeeling, OptionIndex: burnout},
		{QuestionID: graph.QFeelingDown, OptionIndex: down},
		{QuestionID: graph.QInterestLoss, OptionIndex: interest},
		{QuestionID: graph.QAnxietyFrequency, OptionIndex: anxiety},
		{QuestionID: graph.QSelfHarmThoughts, OptionIndex: selfHarm},
	}
}

func TestClassifyThresholds(t *testing.T) {
	testCases := []struct {
		name      string
		answers   []engine.Answer
		wantScore int
		wantLevel Level
	}{
		{
			name:      "zero score",
			answers:   screeningAnswers(0, 0, 0, 0, 0, 0),
			wantScore: 0,
			wantLevel: LevelLow,
		},
		{
			name:      "top of low band",
			answers:   screeningAnswers(3, 2, 0, 0, 0, 0),
			wantScore: 5,
			wantLevel: LevelLow,
		},
		{
			name:      "bottom of moderate band",
			answers:   screeningAnswers(3, 3, 0, 0, 0, 0),
			wantScore: 6,
			wantLevel: LevelModerate,
		},
		{
			name:      "top of moderate band",
			answers:   screeningAnswers(3, 3, 3, 1, 0, 0),
			wantScore: 10,
			wantLevel: LevelModerate,
		},
		{
			name:      "bottom of high band",
			answers:   screeningAnswers(3, 3, 3, 2, 0, 0),
			wantScore: 11,
			wantLevel: LevelHigh,
		},
		{
			name:      "maximum score",
			answers:   screeningAnswers(3, 3, 3, 3, 3, 3),
			wantScore: 18,
			wantLevel: LevelHigh,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.answers)
			if result.Score != tc.wantScore {
				t.Errorf("score %d, want %d", result.Score, tc.wantScore)
			}
			if result.Level != tc.wantLevel {
				t.Errorf("level %q, want %q", result.Level, tc.wantLevel)
			}
		})
	}
}

func TestSelfHarmOverride(t *testing.T) {
	// Any non-zero self-harm answer forces High Risk regardless of score.
	for idx := 1; idx <= 3; idx++ {
		result := Classify(screeningAnswers(0, 0, 0, 0, 0, idx))
		if result.Level != LevelHigh {
			t.Errorf("self-harm index %d with score %d classified %q, want %q",
				idx, result.Score, result.Level, LevelHigh)
		}
	}

	// The lowest option does not trigger the override.
	result := Classify(screeningAnswers(0, 0, 0, 0, 0, 0))
	if result.Level != LevelLow {
		t.Errorf("self-harm index 0 classified %q, want %q", result.Level, LevelLow)
	}
}

func TestNonScreeningAnswersDoNotScore(t *testing.T) {
	answers := append(screeningAnswers(1, 1, 0, 0, 0, 0),
		engine.Answer{QuestionID: graph.QAcademicPressure, OptionLabel: "Very High", OptionIndex: 3},
		engine.Answer{QuestionID: graph.QDoomscrolling, OptionLabel: "Every night", OptionIndex: 3},
	)

	result := Classify(answers)
	if result.Score != 2 {
		t.Errorf("score %d, want 2; non-screening answers leaked into the sum", result.Score)
	}
	if result.Level != LevelLow {
		t.Errorf("level %q, want %q", result.Level, LevelLow)
	}
}

func TestClassifySnapshotsAnswers(t *testing.T) {
	answers := screeningAnswers(0, 0, 0, 0, 0, 0)
	result := Classify(answers)

	if len(result.DerivedFrom) != len(answers) {
		t.Fatalf("snapshot holds %d answers, want %d", len(result.DerivedFrom), len(answers))
	}

	// Mutating the caller's slice must not affect the stored snapshot.
	answers[0].OptionIndex = 3
	if result.DerivedFrom[0].OptionIndex != 0 {
		t.Error("snapshot shares backing array with the caller's slice")
	}
}

// TestClassifyFullTraversal runs complete questionnaire sessions through the
// engine and classifies the resulting answer stores.
func TestClassifyFullTraversal(t *testing.T) {
	testCases := []struct {
		name      string
		options   []string
		wantLevel Level
	}{
		{
			name: "calm run comes out low risk",
			options: []string{
				"Low", "Manageable", "Never", "Not at all",
				"Single", "Content", "Very Satisfied", "Yes, several",
				"Very Good", "Positive", "Never", "Never",
				"Not at all", "Not at all", "Not at all", "Not at all",
			},
			wantLevel: LevelLow,
		},
		{
			name: "high pressure with ideation is high risk",
			options: []string{
				"Very High", "Exams and grades", "Manageable", "Never", "Not at all",
				"Single", "Content", "Very Satisfied", "Yes, several",
				"Very Good", "Positive", "Never", "Never",
				"Not at all", "Not at all", "Not at all", "Nearly every day",
			},
			wantLevel: LevelHigh,
		},
		{
			name: "consistently rough weeks are moderate risk",
			options: []string{
				"Low", "Manageable", "Never", "Not at all",
				"Single", "Content", "Very Satisfied", "Yes, several",
				"Poor", "Positive", "Never", "Sometimes",
				"Several days", "Several days", "Several days", "Not at all",
			},
			wantLevel: LevelModerate,
		},
	}

	m := engine.NewManager(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := m.NewSession()
			for _, option := range tc.options {
				if _, err := m.SubmitAnswer(s, option); err != nil {
					t.Fatalf("submitting %q at %q: %v", option, s.CurrentNodeID, err)
				}
			}
			if s.Status != engine.StatusCompleted {
				t.Fatalf("path did not complete, stuck at %q", s.CurrentNodeID)
			}

			result := Classify(s.Answers)
			if result.Level != tc.wantLevel {
				t.Errorf("classified %q (score %d), want %q", result.Level, result.Score, tc.wantLevel)
			}
		})
	}
}
