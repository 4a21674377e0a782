package tests

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prateeks/prepdeck/internal/quiz"
	"github.com/prateeks/prepdeck/internal/ui/components"
	"github.com/prateeks/prepdeck/internal/ui/theme"
)

func (s *ConfigScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Configure your test"))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Generating questions..."))
		return b.String()
	}

	b.WriteString(s.renderField(width, fieldName, "Test name", s.nameInput.View()))
	b.WriteString(s.renderField(width, fieldSubjects, "Subjects", s.subjects.View()))
	b.WriteString(s.renderField(width, fieldCount, "Questions (5-50)", s.countInput.View()))
	b.WriteString(s.renderField(width, fieldDifficulty, "Difficulty", s.renderDifficulty()))
	b.WriteString(s.renderField(width, fieldTopics, "Focus topics", s.topics.View()))

	b.WriteString("\n")
	startLabel := "  ▸ Start Test "
	if s.focus == fieldStart {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ButtonActive.Render(startLabel)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ButtonInactive.Render(startLabel)))
	}
	b.WriteString("\n")

	// Validation problems shown inline under the form.
	if len(s.problems) > 0 {
		b.WriteString("\n")
		for _, p := range s.problems {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Render("! "+p)))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(s.errMsg)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *ConfigScreen) renderField(width, field int, label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == field {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	line := labelStyle.Render(label) + "\n" + value + "\n\n"
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 64)).Render(line))
}

func (s *ConfigScreen) renderDifficulty() string {
	parts := make([]string, 0, len(Difficulties))
	for i, d := range Difficulties {
		if i == s.difficulty {
			parts = append(parts, theme.Selected.Render("● "+d))
		} else {
			parts = append(parts, theme.Unselected.Render("○ "+d))
		}
	}
	return strings.Join(parts, "   ")
}

func (s *TestScreen) View(width, height int) string {
	if s.showingSubmitConfirm {
		return s.renderSubmitConfirm(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}

	session := s.controller.Session()
	if session == nil || session.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No test in progress.")
	}

	var b strings.Builder

	// Progress line.
	q := session.Current()
	answered, total := session.Progress()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", session.CurrentIndex()+1, total))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s  ", q.Subject, q.EffectiveTopic()))

	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2
	if rightPad < 1 {
		rightPad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", rightPad) + infoRight)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(answered)/float64(total), true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question and options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 70)).Render(s.options.View())))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return b.String()
}

func (s *TestScreen) renderSubmitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Submit this test?"))
	b.WriteString("\n")

	if unanswered := s.unansweredCount(); unanswered > 0 {
		label := "questions are"
		if unanswered == 1 {
			label = "question is"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(fmt.Sprintf("%d %s still unanswered and will count as skipped.", unanswered, label)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("All questions answered."))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, grade it"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderQuitConfirm renders the abandon confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this test?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers will be discarded and nothing will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func (s *ResultsScreen) View(width, height int) string {
	result := s.controller.Result()
	if result == nil {
		return ""
	}

	if s.reviewing {
		return s.renderReview(width, result)
	}
	return s.renderSummary(width, result)
}

func (s *ResultsScreen) renderSummary(width int, result *quiz.Result) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d%%", result.ScorePercent)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Correct: %d        Incorrect: %d        Skipped: %d",
		result.CorrectCount, result.IncorrectCount, result.SkippedCount)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Topic breakdown.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-40, 30)
	if barWidth < 10 {
		barWidth = 10
	}
	for _, topic := range result.TopicOrder {
		stats := result.TopicPerformance[topic]
		ratio := 0.0
		if stats.Total > 0 {
			ratio = float64(stats.Correct) / float64(stats.Total)
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-22s %d/%d", topic, stats.Correct, stats.Total),
			ratio, false, barWidth+30)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	// Recommendation.
	b.WriteString("\n")
	recStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Accent)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		recStyle.Render(result.Recommendation)))
	b.WriteString("\n")

	return b.String()
}

func (s *ResultsScreen) renderReview(width int, result *quiz.Result) string {
	if s.reviewIndex < 0 || s.reviewIndex >= len(result.PerQuestion) {
		return ""
	}
	qr := result.PerQuestion[s.reviewIndex]
	q := qr.Question

	var b strings.Builder

	header := fmt.Sprintf("Review %d of %d", s.reviewIndex+1, len(result.PerQuestion))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(header))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Bold(true).Render(q.Text)))
	b.WriteString("\n\n")

	for _, label := range q.OptionLabels() {
		line := fmt.Sprintf("  %s)  %s", label, q.Options[label])
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case label == q.CorrectAnswer:
			style = theme.Correct
			line += "  ✓"
		case label == qr.UserAnswer && !qr.IsCorrect:
			style = theme.Incorrect
			line += "  ✗ your answer"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Render(style.Render(line))))
		b.WriteString("\n")
	}

	if qr.IsSkipped {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Skipped.Render("Skipped")))
		b.WriteString("\n")
	}

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.TextDim).Render(q.Explanation)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
