package tests

import (
	"fmt"
	"strings"

	"github.com/prateeks/prepdeck/internal/backend"
)

// Subjects selectable when configuring a test.
var Subjects = []string{"Physics", "Chemistry", "Mathematics", "Biology"}

// Difficulties in ascending order, plus a mixed blend of all three.
var Difficulties = []string{"Easy", "Medium", "Hard", "Mixed"}

// Question count limits for a single test.
const (
	MinQuestions = 5
	MaxQuestions = 50
)

// TopicCatalog lists the focus topics offered per subject.
var TopicCatalog = map[string][]string{
	"Physics":     {"Mechanics", "Thermodynamics", "Electromagnetism", "Optics", "Modern Physics"},
	"Chemistry":   {"Physical Chemistry", "Organic Chemistry", "Inorganic Chemistry", "Chemical Bonding"},
	"Mathematics": {"Algebra", "Calculus", "Trigonometry", "Coordinate Geometry", "Probability"},
	"Biology":     {"Botany", "Zoology", "Human Physiology", "Genetics", "Ecology"},
}

// Form holds a test configuration as entered by the user.
type Form struct {
	TestName      string
	Subjects      []string
	QuestionCount int
	Difficulty    string
	Topics        []string
}

// Validate returns user-facing problems with the form, in field order.
// An empty slice means the form can be submitted.
func (f Form) Validate() []string {
	var problems []string
	if len(f.Subjects) == 0 {
		problems = append(problems, "Select at least one subject.")
	}
	if f.QuestionCount < MinQuestions || f.QuestionCount > MaxQuestions {
		problems = append(problems, fmt.Sprintf("Question count must be between %d and %d.", MinQuestions, MaxQuestions))
	}
	if !validDifficulty(f.Difficulty) {
		problems = append(problems, "Pick a difficulty.")
	}
	return problems
}

func validDifficulty(d string) bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ExamType derives the target exam from the subject mix: biology alone
// means NEET, anything else means JEE.
func (f Form) ExamType() string {
	if len(f.Subjects) == 1 && strings.EqualFold(f.Subjects[0], "Biology") {
		return "NEET"
	}
	return "JEE"
}

// Request builds the quiz generation request. The question total is split
// evenly across subjects; integer division leaves any remainder unassigned,
// matching how the backend sizes its output.
func (f Form) Request() backend.QuizRequest {
	perSubject := 0
	if len(f.Subjects) > 0 {
		perSubject = f.QuestionCount / len(f.Subjects)
	}

	subjects := make([]backend.SubjectRequest, 0, len(f.Subjects))
	for _, name := range f.Subjects {
		subjects = append(subjects, backend.SubjectRequest{
			Name:          name,
			QuestionCount: perSubject,
		})
	}

	return backend.QuizRequest{
		ExamType:   f.ExamType(),
		Subjects:   subjects,
		Difficulty: f.Difficulty,
		Topics:     f.Topics,
		TestName:   f.TestName,
	}
}
