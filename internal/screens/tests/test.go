package tests

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	"github.com/prateeks/prepdeck/internal/ui/components"
	"github.com/prateeks/prepdeck/internal/ui/layout"
)

// TestScreen runs an in-progress test. Answers are recorded as the user
// moves through the questions; nothing is graded until the explicit
// submit step.
type TestScreen struct {
	controller *Controller
	store      *history.Store

	options components.OptionList

	showingSubmitConfirm bool
	showingQuitConfirm   bool
	errMsg               string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// NewTest creates the in-progress screen for the controller's session.
func NewTest(controller *Controller, store *history.Store) *TestScreen {
	s := &TestScreen{
		controller: controller,
		store:      store,
	}
	s.loadCurrentQuestion()
	return s
}

func (s *TestScreen) Init() tea.Cmd {
	return nil
}

func (s *TestScreen) Title() string {
	if name := s.controller.Name(); name != "" {
		return name
	}
	return "Test"
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.showingSubmitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Choose"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return s.handleSubmitted(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingSubmitConfirm {
		switch key {
		case "y", "Y", "enter":
			s.showingSubmitConfirm = false
			return s, s.submit()
		case "n", "N", "esc":
			s.showingSubmitConfirm = false
		}
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			_ = s.controller.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	session := s.controller.Session()
	if session == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "s", "S":
		s.showingSubmitConfirm = true
		return s, nil
	case "left", "p":
		s.recordChoice()
		session.Retreat()
		s.loadCurrentQuestion()
		return s, nil
	case "right", "n":
		s.recordChoice()
		session.Advance()
		s.loadCurrentQuestion()
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	s.recordChoice()
	return s, cmd
}

// recordChoice copies the option list's pick into the session.
func (s *TestScreen) recordChoice() {
	session := s.controller.Session()
	if session == nil || !s.options.HasChoice() {
		return
	}
	_ = session.SelectAnswer(session.CurrentIndex(), s.options.Chosen)
}

// loadCurrentQuestion rebuilds the option list for the current question,
// restoring any answer recorded earlier.
func (s *TestScreen) loadCurrentQuestion() {
	session := s.controller.Session()
	if session == nil || session.Len() == 0 {
		return
	}

	q := session.Current()
	opts := make([]components.Option, 0, len(q.Options))
	for _, label := range q.OptionLabels() {
		opts = append(opts, components.Option{Label: label, Text: q.Options[label]})
	}

	s.options = components.NewOptionList(q.Text, opts)
	if answer := session.Answer(session.CurrentIndex()); answer != "" {
		s.options.Choose(answer)
	}
}

func (s *TestScreen) submit() tea.Cmd {
	s.recordChoice()
	return func() tea.Msg {
		result, err := s.controller.Submit()
		return submittedMsg{Result: result, Err: err}
	}
}

func (s *TestScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: NewResults(s.controller, s.store),
		}
	}
}

// unansweredCount returns how many questions still lack an answer.
func (s *TestScreen) unansweredCount() int {
	session := s.controller.Session()
	if session == nil {
		return 0
	}
	answered, total := session.Progress()
	return total - answered
}
