package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateeks/prepdeck/internal/ui/theme"
)

// Option is a single answer choice.
type Option struct {
	Label string
	Text  string
}

// OptionList lets the user pick one answer from a list of labelled
// choices. It records the pick without judging it; grading happens
// elsewhere once the whole test is submitted.
type OptionList struct {
	Question string
	Options  []Option
	Cursor   int
	Chosen   string
}

// NewOptionList creates an option list with no answer chosen yet.
func NewOptionList(question string, options []Option) OptionList {
	return OptionList{
		Question: question,
		Options:  options,
	}
}

// Choose records the answer with the given label, if present.
func (o *OptionList) Choose(label string) {
	for i, opt := range o.Options {
		if opt.Label == label {
			o.Chosen = label
			o.Cursor = i
			return
		}
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Choosing again
// replaces the earlier pick.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		if o.Cursor >= 0 && o.Cursor < len(o.Options) {
			o.Chosen = o.Options[o.Cursor].Label
		}
	default:
		// Direct pick by label key (a/b/c/...).
		for _, opt := range o.Options {
			if len(opt.Label) == 1 && kmsg.String() == string(opt.Label[0]+'a'-'A') {
				o.Choose(opt.Label)
				break
			}
		}
	}

	return o, nil
}

// View renders the choices, marking the chosen one.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		marker := "( )"
		if opt.Label == o.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, opt.Label, opt.Text)

		switch {
		case opt.Label == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// HasChoice reports whether an answer has been recorded.
func (o OptionList) HasChoice() bool {
	return o.Chosen != ""
}
