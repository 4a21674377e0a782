package tests

import (
	"strings"
	"testing"
)

func TestForm_Validate(t *testing.T) {
	valid := Form{
		TestName:      "Evening revision",
		Subjects:      []string{"Physics"},
		QuestionCount: 10,
		Difficulty:    "Medium",
	}
	if problems := valid.Validate(); len(problems) != 0 {
		t.Errorf("expected valid form, got problems: %v", problems)
	}

	noSubjects := valid
	noSubjects.Subjects = nil
	problems := noSubjects.Validate()
	if len(problems) != 1 {
		t.Fatalf("problems = %v, want exactly one", problems)
	}
	if !strings.Contains(problems[0], "subject") {
		t.Errorf("problem %q should mention subjects", problems[0])
	}
}

func TestForm_ValidateCountBounds(t *testing.T) {
	cases := []struct {
		count int
		ok    bool
	}{
		{4, false},
		{5, true},
		{50, true},
		{51, false},
		{0, false},
	}
	for _, tc := range cases {
		f := Form{
			Subjects:      []string{"Chemistry"},
			QuestionCount: tc.count,
			Difficulty:    "Easy",
		}
		problems := f.Validate()
		if tc.ok && len(problems) != 0 {
			t.Errorf("count %d: unexpected problems %v", tc.count, problems)
		}
		if !tc.ok && len(problems) == 0 {
			t.Errorf("count %d: expected a validation problem", tc.count)
		}
	}
}

func TestForm_ValidateDifficulty(t *testing.T) {
	cases := []struct {
		difficulty string
		ok         bool
	}{
		{"Easy", true},
		{"Medium", true},
		{"Hard", true},
		{"Mixed", true},
		{"", false},
		{"Brutal", false},
	}
	for _, tc := range cases {
		f := Form{
			Subjects:      []string{"Physics"},
			QuestionCount: 10,
			Difficulty:    tc.difficulty,
		}
		problems := f.Validate()
		if tc.ok && len(problems) != 0 {
			t.Errorf("difficulty %q: unexpected problems %v", tc.difficulty, problems)
		}
		if !tc.ok && len(problems) == 0 {
			t.Errorf("difficulty %q: expected a validation problem", tc.difficulty)
		}
	}
}

func TestForm_ExamType(t *testing.T) {
	cases := []struct {
		subjects []string
		want     string
	}{
		{[]string{"Biology"}, "NEET"},
		{[]string{"biology"}, "NEET"},
		{[]string{"Physics"}, "JEE"},
		{[]string{"Biology", "Physics"}, "JEE"},
		{[]string{"Physics", "Chemistry", "Mathematics"}, "JEE"},
		{nil, "JEE"},
	}
	for _, tc := range cases {
		f := Form{Subjects: tc.subjects}
		if got := f.ExamType(); got != tc.want {
			t.Errorf("ExamType(%v) = %q, want %q", tc.subjects, got, tc.want)
		}
	}
}

func TestForm_RequestSplitsCount(t *testing.T) {
	f := Form{
		TestName:      "Full mock",
		Subjects:      []string{"Physics", "Chemistry", "Mathematics"},
		QuestionCount: 10,
		Difficulty:    "Hard",
		Topics:        []string{"Optics"},
	}
	req := f.Request()

	if req.ExamType != "JEE" {
		t.Errorf("ExamType = %q, want JEE", req.ExamType)
	}
	if req.TestName != "Full mock" {
		t.Errorf("TestName = %q", req.TestName)
	}
	if len(req.Subjects) != 3 {
		t.Fatalf("subjects = %d, want 3", len(req.Subjects))
	}
	for _, sub := range req.Subjects {
		if sub.QuestionCount != 3 {
			t.Errorf("subject %s count = %d, want 3 (integer split of 10/3)", sub.Name, sub.QuestionCount)
		}
	}
	if len(req.Topics) != 1 || req.Topics[0] != "Optics" {
		t.Errorf("Topics = %v, want [Optics]", req.Topics)
	}
}
