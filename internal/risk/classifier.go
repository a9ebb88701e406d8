package risk

import (
	"wellness-service/internal/engine"
	"wellness-service/internal/graph"
)

// Level is the discrete risk category a completed questionnaire maps to.
type Level string

const (
	LevelLow      Level = "Low Risk"
	LevelModerate Level = "Moderate Risk"
	LevelHigh     Level = "High Risk"
)

// Score thresholds, inclusive upper bounds. Six screening questions with
// option indexes 0-3 give a 0-18 range.
const (
	lowMax      = 5
	moderateMax = 10
)

// screeningQuestions are the severity-scored questions. Option order on
// these nodes is their severity order.
var screeningQuestions = []string{
	graph.QSleepQuality,
	graph.QBurnoutFeeling,
	graph.QFeelingDown,
	graph.QInterestLoss,
	graph.QAnxietyFrequency,
	graph.QSelfHarmThoughts,
}

// Result is the classification of one answer set. DerivedFrom is the answer
// snapshot the classification was computed from; it is not recomputed if the
// questionnaire or thresholds change later.
type Result struct {
	Level       Level           `bson:"level" json:"level"`
	Score       int             `bson:"score" json:"score"`
	DerivedFrom []engine.Answer `bson:"derived_from" json:"derived_from"`
}

// Classify maps a completed answer set to a risk level. Pure and
// deterministic: the score is the sum of option indexes over the screening
// questions, partitioned at the fixed thresholds.
//
// Safety override: any answer to the self-harm question above its lowest
// option forces High Risk unconditionally, whatever the rest of the answers
// say.
func Classify(answers []engine.Answer) Result {
	snapshot := make([]engine.Answer, len(answers))
	copy(snapshot, answers)

	score := 0
	override := false
	for _, a := range snapshot {
		if a.QuestionID == graph.QSelfHarmThoughts && a.OptionIndex > 0 {
			override = true
		}
		if isScreening(a.QuestionID) {
			score += a.OptionIndex
		}
	}

	result := Result{Score: score, DerivedFrom: snapshot}
	switch {
	case override:
		result.Level = LevelHigh
	case score <= lowMax:
		result.Level = LevelLow
	case score <= moderateMax:
		result.Level = LevelModerate
	default:
		result.Level = LevelHigh
	}
	return result
}

func isScreening(questionID string) bool {
	for _, id := range screeningQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}
