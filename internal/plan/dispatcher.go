package plan

import (
	"fmt"
	"strings"

	"wellness-service/internal/engine"
	"wellness-service/internal/graph"
	"wellness-service/internal/risk"
)

// Suggestion is one next-step card in a moderate-risk plan.
type Suggestion struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Link     string `json:"link"`
	LinkText string `json:"link_text"`
}

// Hotline is a crisis helpline entry. These are static and must render for
// every high-risk plan regardless of any later failure.
type Hotline struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Plan is the assembled post-quiz output for one risk level.
type Plan struct {
	Level       risk.Level   `json:"level"`
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Hotlines    []Hotline    `json:"hotlines,omitempty"`
}

// CrisisHotlines are the national helplines surfaced on every high-risk plan.
var CrisisHotlines = []Hotline{
	{Name: "KIRAN National Mental Health Helpline", Phone: "1800-599-0019"},
	{Name: "Vandrevala Foundation", Phone: "9999666555"},
}

const (
	lowMessage = "It's great to see that you're in a good place with your mental well-being. " +
		"Proactively maintaining it is just as important as addressing challenges."
	moderateMessage = "It sounds like you're carrying a heavy weight right now, and it's completely valid " +
		"to feel this way. Here are some small, gentle steps based on what you've shared."
	highMessage = "Your responses indicate you may be going through a period of intense distress. " +
		"Your safety comes first. Reaching out for professional support is the most resilient step you can take right now."
)

// maxSuggestions caps a moderate plan; first-matched-first-kept.
const maxSuggestions = 3

// Dispatch assembles the plan for a classification result. The moderate
// branch inspects individual answers; low and high are static. External
// calls (wellness plan text, counselor lookup) are separate, on-demand
// operations and never block this assembly.
func Dispatch(result risk.Result) Plan {
	switch result.Level {
	case risk.LevelHigh:
		return Plan{Level: result.Level, Message: highMessage, Hotlines: CrisisHotlines}
	case risk.LevelModerate:
		return Plan{
			Level:       result.Level,
			Message:     moderateMessage,
			Suggestions: moderateSuggestions(result.DerivedFrom),
		}
	default:
		return Plan{
			Level:   result.Level,
			Message: lowMessage,
			Suggestions: []Suggestion{
				{
					Title:    "Explore Your Thoughts",
					Text:     "Sometimes just talking things out can lead to new insights. Our AI companion is here to be a sounding board.",
					Link:     "/chatbot",
					LinkText: "Chat with AI Companion",
				},
				{
					Title:    "Build Your Wellbeing Toolkit",
					Text:     "Discover new mindfulness practices and positive activities to add to your toolkit.",
					Link:     "/activities",
					LinkText: "Visit the Wellbeing Hub",
				},
			},
		}
	}
}

// moderateSuggestions scans trigger answers in a fixed order (sleep,
// workload, social, mood) and keeps at most maxSuggestions cards. A generic
// journaling card is appended when fewer than two triggers matched.
func moderateSuggestions(answers []engine.Answer) []Suggestion {
	session := engine.Session{Answers: answers}
	var out []Suggestion

	if a, ok := session.Answered(graph.QSleepQuality); ok && (a.OptionLabel == "Poor" || a.OptionLabel == "Very Poor") {
		out = append(out, Suggestion{
			Title:    "For Restless Nights",
			Text:     "When sleep feels out of reach, a calming immersive scene can help quiet the mind.",
			Link:     "/activities/mindfulness/immersive",
			LinkText: "Try an Immersive Escape",
		})
	}

	workload, hasWorkload := session.Answered(graph.QWorkload)
	pressure, hasPressure := session.Answered(graph.QAcademicPressure)
	if (hasWorkload && workload.OptionLabel == "Overwhelming") ||
		(hasPressure && strings.Contains(pressure.OptionLabel, "High")) {
		out = append(out, Suggestion{
			Title:    "For Academic Pressure",
			Text:     "When your workload feels overwhelming, a short, focused break can make all the difference.",
			Link:     "/activities/mindfulness",
			LinkText: "Try a Mindful Exercise",
		})
	}

	social, hasSocial := session.Answered(graph.QSocialSatisfaction)
	support, hasSupport := session.Answered(graph.QSupportSystem)
	if (hasSocial && strings.Contains(social.OptionLabel, "Dissatisfied")) ||
		(hasSupport && strings.Contains(support.OptionLabel, "No")) {
		out = append(out, Suggestion{
			Title:    "For When You Feel Alone",
			Text:     "Sometimes, just writing things down can make them feel more manageable. Our AI companion offers a private space to talk.",
			Link:     "/chatbot",
			LinkText: "Talk with AI Companion",
		})
	}

	interest, hasInterest := session.Answered(graph.QInterestLoss)
	down, hasDown := session.Answered(graph.QFeelingDown)
	if (hasInterest && strings.Contains(interest.OptionLabel, "days")) ||
		(hasDown && strings.Contains(down.OptionLabel, "days")) {
		out = append(out, Suggestion{
			Title:    "To Find a Spark",
			Text:     "When it's hard to feel joy, a small positive story or an uplifting quote can offer a glimmer of light.",
			Link:     "/activities/inspiration",
			LinkText: "Find Inspiration",
		})
	}

	if len(out) < 2 {
		out = append(out, Suggestion{
			Title:    "A Space to Reflect",
			Text:     "Journaling can be a powerful tool to untangle your thoughts. Consider spending a few minutes with our private journal.",
			Link:     "/activities/check-in",
			LinkText: "Open Your Journal",
		})
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// WellnessPlanPrompt builds the deterministic prompt for the free-text
// wellness plan elaboration. The output format contract (## headings, *
// bullets) matches what the plan renderer expects.
func WellnessPlanPrompt(p Plan) string {
	return fmt.Sprintf(`A student has just completed a mental wellness quiz and received the following result: "%s". The summary says: "%s". Based on this, create a simple, gentle, and actionable wellness plan. The plan should be encouraging and focus on small, manageable steps. Keep the tone supportive and non-clinical. Format the output using Markdown: level 2 headings (e.g. '## Acknowledging Your Feelings') for sections and bullet points (e.g. '* A small, kind thought.') for list items. Sections: 1. Acknowledging Your Feelings, 2. Mindful Moments, 3. Small, Kind Actions, 4. A Gentle Reminder to seek professional help if needed.`,
		p.Level, p.Message)
}

// WellnessPlanFallback is shown when the AI collaborator is unavailable.
const WellnessPlanFallback = "I'm sorry, I was unable to generate a wellness plan at this time. Please try again in a moment. " +
	"In the meantime, exploring the self-help guides in our Resources section is a great next step."

// CounselorPrompt builds the location-grounded lookup prompt.
func CounselorPrompt(latitude, longitude float64) string {
	return fmt.Sprintf(`Identify professional mental health counselors or psychology clinics near coordinates [%f, %f] in India.
Please provide the results in a clear Markdown list. For each entry, strictly include:
- **Name**: [Official Name]
- **Specialty**: [Area of focus]
- **Address**: [Full physical address]
- **Phone**: [Valid contact number]`, latitude, longitude)
}

// Messages for the counselor lookup failure modes. Static hotlines are
// rendered alongside either of them.
const (
	LocationDeniedMessage = "Location access was denied. You can still reach trained counselors right now " +
		"through the helplines below, or enable location services and try again."
	LookupFailedMessage = "We couldn't reach the local directory just now. Please use the helplines below " +
		"for immediate, confidential support."
)
