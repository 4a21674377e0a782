package tests

import (
	"fmt"

	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/quiz"
)

// Phase is a stage in the test lifecycle.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseInProgress
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// TransitionError reports a lifecycle operation attempted in the wrong phase.
type TransitionError struct {
	Op    string
	Phase Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.Phase)
}

// Controller drives a test through its lifecycle. Phases advance one step
// at a time: begin moves a configured test into progress, submit grades it,
// and archive files the result and returns to configuring. Abandoning an
// in-progress test or discarding a completed one also returns to
// configuring, recording nothing.
type Controller struct {
	phase   Phase
	name    string
	session *quiz.Session
	result  *quiz.Result
}

// NewController creates a Controller in the configuring phase.
func NewController() *Controller {
	return &Controller{phase: PhaseConfiguring}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Name returns the test name set at Begin.
func (c *Controller) Name() string { return c.name }

// Session returns the active session, or nil before Begin.
func (c *Controller) Session() *quiz.Session { return c.session }

// Result returns the graded result, or nil before Submit.
func (c *Controller) Result() *quiz.Result { return c.result }

// Begin starts the given session. Only valid while configuring.
func (c *Controller) Begin(name string, s *quiz.Session) error {
	if c.phase != PhaseConfiguring {
		return &TransitionError{Op: "begin", Phase: c.phase}
	}
	if s == nil || s.Len() == 0 {
		return quiz.ErrEmptySession
	}
	c.name = name
	c.session = s
	c.result = nil
	c.phase = PhaseInProgress
	return nil
}

// Submit grades the in-progress session. Grading happens exactly once;
// a second submit is a transition error, never a rescore.
func (c *Controller) Submit() (*quiz.Result, error) {
	if c.phase != PhaseInProgress {
		return nil, &TransitionError{Op: "submit", Phase: c.phase}
	}
	result, err := quiz.Score(c.session)
	if err != nil {
		return nil, err
	}
	c.result = result
	c.phase = PhaseCompleted
	return result, nil
}

// Archive files the completed test into the store and resets the
// controller for the next configuration.
func (c *Controller) Archive(store *history.Store) (*history.Entry, error) {
	if c.phase != PhaseCompleted {
		return nil, &TransitionError{Op: "archive", Phase: c.phase}
	}
	entry := store.Archive(c.session, c.result, c.name)
	c.reset()
	return entry, nil
}

// Abandon discards an in-progress test without grading or archiving.
func (c *Controller) Abandon() error {
	if c.phase != PhaseInProgress {
		return &TransitionError{Op: "abandon", Phase: c.phase}
	}
	c.reset()
	return nil
}

// Discard drops a completed test without filing it into history and
// returns to configuring. This is how "start a new test" leaves the
// results without growing the archive.
func (c *Controller) Discard() error {
	if c.phase != PhaseCompleted {
		return &TransitionError{Op: "discard", Phase: c.phase}
	}
	c.reset()
	return nil
}

func (c *Controller) reset() {
	c.phase = PhaseConfiguring
	c.name = ""
	c.session = nil
	c.result = nil
}
