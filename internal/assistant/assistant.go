// Package assistant relays chat input to the generation backend, picking an
// endpoint by keyword the same way the rest of the app picks explicitly.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/prateeks/prepdeck/internal/backend"
)

// apologyReply is shown when every backend route fails.
const apologyReply = "Sorry, I'm having trouble connecting to my brain. Please try again in a moment."

// sampleProfile stands in for a real learner profile until onboarding
// collects one.
var sampleProfile = map[string]any{
	"name":                "Sample User",
	"age":                 "18",
	"education_status":    "High School",
	"target_exams":        []string{"JEE"},
	"exam_dates":          []string{"2027-05-15"},
	"grade_percentage":    "85%",
	"strongest_subjects":  []string{"Mathematics"},
	"weakest_subjects":    []string{"Chemistry"},
	"previous_scores":     "Mock test: 75/100",
	"weekday_study_hours": "4",
	"weekend_study_hours": "6",
	"best_study_time":     "Morning",
	"break_frequency":     "Every 45 mins",
	"learning_style":      "Visual",
	"textbooks":           []string{"Standard JEE Books"},
	"online_courses":      []string{"Khan Academy"},
	"coaching_classes":    "Weekend coaching",
	"mock_tests":          "Weekly",
	"sleep_schedule":      "10pm - 6am",
	"physical_activity":   "30 min daily",
	"health_conditions":   "None",
	"other_commitments":   "School 8am-3pm",
	"target_college":      "IIT Delhi",
	"target_score":        "95+",
	"preparation_months":  "6",
	"priority_areas":      []string{"Physics", "Chemistry"},
}

// Assistant routes user input to the matching backend endpoint and shapes
// the reply as display text.
type Assistant struct {
	backend backend.Service
}

// New creates an Assistant over the given backend.
func New(b backend.Service) *Assistant {
	return &Assistant{backend: b}
}

// Reply produces the assistant's answer to input. Backend failures are
// absorbed into a canned apology; Reply never returns an error because the
// panel must keep working regardless.
func (a *Assistant) Reply(ctx context.Context, input string) string {
	lower := strings.ToLower(input)

	var reply string
	var err error
	switch {
	case strings.Contains(lower, "study plan"):
		reply, err = a.backend.GenerateStudyPlan(ctx, sampleProfile)
	case strings.Contains(lower, "quiz"), strings.Contains(lower, "test"):
		reply, err = a.quickQuiz(ctx)
	case strings.Contains(lower, "resources"), strings.Contains(lower, "material"):
		reply, err = a.resourceSummary(ctx, input)
	default:
		reply, err = a.backend.GenerateResponse(ctx, input)
	}

	if err != nil || reply == "" {
		return apologyReply
	}
	return reply
}

// quickQuiz fetches a tiny quiz and renders it as chat text, answers held
// back.
func (a *Assistant) quickQuiz(ctx context.Context) (string, error) {
	questions, err := a.backend.GenerateQuiz(ctx, backend.QuizRequest{
		ExamType:   "JEE",
		Subjects:   []backend.SubjectRequest{{Name: "Physics", QuestionCount: 3}},
		Difficulty: "Medium",
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Here's a quick quiz to test your knowledge:\n\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "Q%d: %s\n", i+1, q.Text)
		for _, label := range q.OptionLabels() {
			fmt.Fprintf(&b, "%s: %s\n", label, q.Options[label])
		}
		b.WriteString("\n")
	}
	b.WriteString("Let me know when you're ready for the answers!")
	return b.String(), nil
}

// resourceSummary runs a search and flattens both result fields into text.
func (a *Assistant) resourceSummary(ctx context.Context, query string) (string, error) {
	result, err := a.backend.Search(ctx, query)
	if err != nil {
		return "", err
	}
	return "Here are some resources that might help:\n\n" +
		"YouTube Videos:\n" + strings.Join(result.YouTubeResults, "\n") +
		"\n\nOther Resources:\n" + result.EducationalResources, nil
}
