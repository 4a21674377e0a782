// Package history renders the archive of completed tests.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	"github.com/prateeks/prepdeck/internal/ui/layout"
	"github.com/prateeks/prepdeck/internal/ui/theme"
)

// HistoryScreen lists archived tests newest first, with per-test topic
// detail behind an expansion toggle.
type HistoryScreen struct {
	store    *hist.Store
	entries  []*hist.Entry
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen over the given store.
func New(store *hist.Store) *HistoryScreen {
	return &HistoryScreen{
		store:    store,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	s.entries = s.store.List()
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Test History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No tests yet. Take one to see it here!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, entry := range s.entries {
		title := entry.Title
		if title == "" {
			title = "Untitled test"
		}
		dateStr := entry.CreatedAt.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d questions  %d%%",
			prefix, dateStr, title, entry.Result.TotalQuestions, entry.Result.ScorePercent)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderDetail(&b, entry, width)
		}
	}

	return b.String()
}

// renderDetail writes the per-topic breakdown for an expanded entry.
func (s *HistoryScreen) renderDetail(b *strings.Builder, entry *hist.Entry, width int) {
	result := entry.Result

	counts := fmt.Sprintf("    %d correct · %d incorrect · %d skipped",
		result.CorrectCount, result.IncorrectCount, result.SkippedCount)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts)))
	b.WriteString("\n")

	for _, topic := range result.TopicOrder {
		stats := result.TopicPerformance[topic]
		line := fmt.Sprintf("    %s: %d/%d", topic, stats.Correct, stats.Total)

		style := lipgloss.NewStyle().Foreground(theme.Success)
		if stats.Total > 0 && float64(stats.Correct)/float64(stats.Total) < 0.6 {
			style = lipgloss.NewStyle().Foreground(theme.Warning)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).
			Render("    "+result.Recommendation)))
	b.WriteString("\n")
}
