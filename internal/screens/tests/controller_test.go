package tests

import (
	"errors"
	"testing"

	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/quiz"
)

func testSession(t *testing.T) *quiz.Session {
	t.Helper()
	s, err := quiz.NewSession([]quiz.Question{
		{
			Text:          "A ball is dropped from rest. What is its speed after 1 s?",
			Options:       map[string]string{"A": "4.9 m/s", "B": "9.8 m/s", "C": "19.6 m/s", "D": "1 m/s"},
			CorrectAnswer: "B",
			Topic:         "Mechanics",
			Subject:       "Physics",
		},
		{
			Text:          "What is the derivative of x^2?",
			Options:       map[string]string{"A": "x", "B": "2x", "C": "x^2", "D": "2"},
			CorrectAnswer: "B",
			Topic:         "Calculus",
			Subject:       "Mathematics",
		},
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestController_Lifecycle(t *testing.T) {
	c := NewController()
	if c.Phase() != PhaseConfiguring {
		t.Fatalf("initial phase = %v, want configuring", c.Phase())
	}

	if err := c.Begin("Morning drill", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if c.Phase() != PhaseInProgress {
		t.Errorf("phase after Begin = %v, want in-progress", c.Phase())
	}
	if c.Name() != "Morning drill" {
		t.Errorf("Name = %q, want %q", c.Name(), "Morning drill")
	}

	result, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Phase() != PhaseCompleted {
		t.Errorf("phase after Submit = %v, want completed", c.Phase())
	}
	if result.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", result.TotalQuestions)
	}

	store := history.NewStore()
	entry, err := c.Archive(store)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if entry.Title != "Morning drill" {
		t.Errorf("entry title = %q, want %q", entry.Title, "Morning drill")
	}
	if store.Len() != 1 {
		t.Errorf("store length = %d, want 1", store.Len())
	}
	if c.Phase() != PhaseConfiguring {
		t.Errorf("phase after Archive = %v, want configuring", c.Phase())
	}
	if c.Session() != nil || c.Result() != nil {
		t.Error("expected session and result cleared after Archive")
	}
}

func TestController_NoPhaseSkipping(t *testing.T) {
	c := NewController()
	store := history.NewStore()

	// Submit and Archive are invalid while configuring.
	if _, err := c.Submit(); err == nil {
		t.Error("expected error submitting while configuring")
	}
	if _, err := c.Archive(store); err == nil {
		t.Error("expected error archiving while configuring")
	}

	if err := c.Begin("t", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Begin and Archive are invalid while in progress.
	if err := c.Begin("t2", testSession(t)); err == nil {
		t.Error("expected error beginning while in progress")
	}
	if _, err := c.Archive(store); err == nil {
		t.Error("expected error archiving while in progress")
	}

	var terr *TransitionError
	_, err := c.Archive(store)
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if terr.Phase != PhaseInProgress {
		t.Errorf("TransitionError.Phase = %v, want in-progress", terr.Phase)
	}
}

func TestController_SubmitOnce(t *testing.T) {
	c := NewController()
	if err := c.Begin("t", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// A second submit must not rescore.
	if _, err := c.Submit(); err == nil {
		t.Error("expected error on second submit")
	}
}

func TestController_Abandon(t *testing.T) {
	c := NewController()
	if err := c.Abandon(); err == nil {
		t.Error("expected error abandoning while configuring")
	}

	if err := c.Begin("t", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := c.Abandon(); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if c.Phase() != PhaseConfiguring {
		t.Errorf("phase after Abandon = %v, want configuring", c.Phase())
	}
	if c.Session() != nil {
		t.Error("expected session cleared after Abandon")
	}
}

func TestController_DiscardCompleted(t *testing.T) {
	c := NewController()
	if err := c.Discard(); err == nil {
		t.Error("expected error discarding while configuring")
	}

	if err := c.Begin("t", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := c.Discard(); err == nil {
		t.Error("expected error discarding while in progress")
	}
	if _, err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Abandon does not apply to a graded test; Discard does.
	if err := c.Abandon(); err == nil {
		t.Error("expected error abandoning while completed")
	}
	if err := c.Discard(); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if c.Phase() != PhaseConfiguring {
		t.Errorf("phase after Discard = %v, want configuring", c.Phase())
	}
	if c.Session() != nil || c.Result() != nil {
		t.Error("expected session and result cleared after Discard")
	}
}

func TestController_BeginEmptySession(t *testing.T) {
	c := NewController()
	if err := c.Begin("t", nil); !errors.Is(err, quiz.ErrEmptySession) {
		t.Errorf("Begin(nil) = %v, want ErrEmptySession", err)
	}
}
