package tests

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	"github.com/prateeks/prepdeck/internal/ui/layout"
)

// ResultsScreen shows the graded test. Finishing archives the result
// into history; starting a new test instead discards it and returns to
// the configuration form.
type ResultsScreen struct {
	controller *Controller
	store      *history.Store

	reviewing   bool
	reviewIndex int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates the results screen for a completed test.
func NewResults(controller *Controller, store *history.Store) *ResultsScreen {
	return &ResultsScreen{
		controller: controller,
		store:      store,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "R", Description: "Summary"},
			{Key: "Enter", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "N", Description: "New test"},
		{Key: "Enter", Description: "Save & finish"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	result := s.controller.Result()

	switch kmsg.String() {
	case "r", "R":
		s.reviewing = !s.reviewing
		return s, nil
	case "up", "k":
		if s.reviewing && s.reviewIndex > 0 {
			s.reviewIndex--
		}
		return s, nil
	case "down", "j":
		if s.reviewing && result != nil && s.reviewIndex < len(result.PerQuestion)-1 {
			s.reviewIndex++
		}
		return s, nil
	case "n", "N":
		return s.newTest()
	case "enter", "esc":
		return s.finish()
	}

	return s, nil
}

// newTest discards the completed test and drops back to the
// configuration form one level down. Nothing is archived.
func (s *ResultsScreen) newTest() (screen.Screen, tea.Cmd) {
	if err := s.controller.Discard(); err != nil {
		return s, nil
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// finish archives the result and unwinds back to the home screen. Two
// pops: this screen sits where the test screen was, above the config form.
func (s *ResultsScreen) finish() (screen.Screen, tea.Cmd) {
	if _, err := s.controller.Archive(s.store); err != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	pop := func() tea.Msg { return router.PopScreenMsg{} }
	return s, tea.Batch(pop, pop)
}
