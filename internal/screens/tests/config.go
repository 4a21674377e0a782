package tests

import (
	"context"
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/prateeks/prepdeck/internal/backend"
	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/quiz"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	"github.com/prateeks/prepdeck/internal/ui/components"
	"github.com/prateeks/prepdeck/internal/ui/layout"
)

// Focusable fields on the configuration form, in tab order.
const (
	fieldName = iota
	fieldSubjects
	fieldCount
	fieldDifficulty
	fieldTopics
	fieldStart
	fieldEnd // sentinel
)

// ConfigScreen is the test setup form. It gathers a Form, asks the
// backend for questions, and hands the resulting session to a TestScreen.
type ConfigScreen struct {
	svc        backend.Service
	store      *history.Store
	controller *Controller

	nameInput  components.TextInput
	subjects   components.ChipGroup
	countInput components.TextInput
	difficulty int
	topics     components.ChipGroup

	focus    int
	loading  bool
	problems []string
	errMsg   string
}

var _ screen.Screen = (*ConfigScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigScreen)(nil)

// NewConfig creates the configuration screen.
func NewConfig(svc backend.Service, store *history.Store) *ConfigScreen {
	name := components.NewTextInput("My practice test", false, 40)
	count := components.NewTextInput("10", true, 2)

	s := &ConfigScreen{
		svc:        svc,
		store:      store,
		controller: NewController(),
		nameInput:  name,
		subjects:   components.NewChipGroup(Subjects),
		countInput: count,
		difficulty: 1, // Medium
	}
	s.rebuildTopics()
	return s
}

func (s *ConfigScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *ConfigScreen) Title() string {
	return "New Test"
}

func (s *ConfigScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{
			{Key: "…", Description: "Generating questions"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConfigScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == fieldName && !s.loading {
		var cmd tea.Cmd
		s.nameInput, cmd = s.nameInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ConfigScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// All input is ignored while a generation request is outstanding,
	// so the form cannot be resubmitted mid-flight.
	if s.loading {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "down":
		s.focus = (s.focus + 1) % fieldEnd
		return s, nil
	case "shift+tab", "up":
		s.focus = (s.focus + fieldEnd - 1) % fieldEnd
		return s, nil
	}

	switch s.focus {
	case fieldName:
		var cmd tea.Cmd
		s.nameInput, cmd = s.nameInput.Update(msg)
		return s, cmd

	case fieldSubjects:
		before := len(s.subjects.Selected())
		var cmd tea.Cmd
		s.subjects, cmd = s.subjects.Update(msg)
		if len(s.subjects.Selected()) != before {
			s.rebuildTopics()
		}
		return s, cmd

	case fieldCount:
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd

	case fieldDifficulty:
		switch msg.String() {
		case "left", "h":
			if s.difficulty > 0 {
				s.difficulty--
			}
		case "right", "l":
			if s.difficulty < len(Difficulties)-1 {
				s.difficulty++
			}
		}
		return s, nil

	case fieldTopics:
		var cmd tea.Cmd
		s.topics, cmd = s.topics.Update(msg)
		return s, cmd

	case fieldStart:
		if msg.String() == "enter" {
			return s.start()
		}
	}

	return s, nil
}

// rebuildTopics rebuilds the topic chips from the selected subjects,
// keeping selections for topics that are still offered.
func (s *ConfigScreen) rebuildTopics() {
	keep := make(map[string]bool)
	for _, t := range s.topics.Selected() {
		keep[t] = true
	}

	var chips []string
	for _, subject := range s.subjects.Selected() {
		chips = append(chips, TopicCatalog[subject]...)
	}

	group := components.NewChipGroup(chips)
	for _, t := range chips {
		if keep[t] {
			group.Choose(t)
		}
	}
	s.topics = group
}

// form snapshots the current field values.
func (s *ConfigScreen) form() Form {
	count, err := strconv.Atoi(s.countInput.Value())
	if err != nil {
		count = 0
	}
	return Form{
		TestName:      s.nameInput.Value(),
		Subjects:      s.subjects.Selected(),
		QuestionCount: count,
		Difficulty:    Difficulties[s.difficulty],
		Topics:        s.topics.Selected(),
	}
}

func (s *ConfigScreen) start() (screen.Screen, tea.Cmd) {
	form := s.form()

	s.problems = form.Validate()
	if len(s.problems) > 0 {
		return s, nil
	}

	s.errMsg = ""
	s.loading = true
	req := form.Request()
	return s, func() tea.Msg {
		questions, err := s.svc.GenerateQuiz(context.Background(), req)
		return quizReadyMsg{Questions: questions, Err: err}
	}
}

func (s *ConfigScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false

	if msg.Err != nil {
		s.errMsg = describeBackendError(msg.Err)
		return s, nil
	}

	session, err := quiz.NewSession(msg.Questions)
	if err != nil {
		s.errMsg = describeBackendError(err)
		return s, nil
	}

	if err := s.controller.Begin(s.form().TestName, session); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: NewTest(s.controller, s.store),
		}
	}
}

// describeBackendError turns transport and payload failures into the
// messages shown on the form.
func describeBackendError(err error) string {
	var unavailable *backend.ErrBackendUnavailable
	if errors.As(err, &unavailable) {
		return "Cannot reach the question service. Is the backend running?"
	}
	var malformed *backend.ErrMalformedResponse
	if errors.As(err, &malformed) {
		return "The question service returned an unusable response. Try again."
	}
	if errors.Is(err, quiz.ErrEmptySession) {
		return "The question service returned an empty test. Try again."
	}
	return err.Error()
}
