package app

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateeks/prepdeck/internal/assistant"
	"github.com/prateeks/prepdeck/internal/ui/components"
	"github.com/prateeks/prepdeck/internal/ui/theme"
)

// panelWidth is the column reserved for the assistant when it is open.
const panelWidth = 42

// assistantReplyMsg carries the assistant's answer back to the panel.
type assistantReplyMsg struct {
	Message assistant.Message
}

// assistantPanel is the chat side panel. The app owns it and overlays it
// next to whatever screen is active.
type assistantPanel struct {
	svc      *assistant.Assistant
	input    components.TextInput
	messages []assistant.Message
	waiting  bool
}

func newAssistantPanel(svc *assistant.Assistant) assistantPanel {
	return assistantPanel{
		svc:   svc,
		input: components.NewTextInput("Ask me anything...", false, 200),
		messages: []assistant.Message{
			assistant.NewMessage(assistant.Greeting, assistant.SenderBot),
		},
	}
}

func (p assistantPanel) Init() tea.Cmd {
	return p.input.Init()
}

func (p assistantPanel) Update(msg tea.Msg) (assistantPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case assistantReplyMsg:
		p.waiting = false
		p.messages = append(p.messages, msg.Message)
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return p.send()
		}
	}

	if !p.waiting {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p assistantPanel) send() (assistantPanel, tea.Cmd) {
	text := strings.TrimSpace(p.input.Value())
	if text == "" || p.waiting {
		return p, nil
	}

	p.messages = append(p.messages, assistant.NewMessage(text, assistant.SenderUser))
	p.input = components.NewTextInput("Ask me anything...", false, 200)
	p.waiting = true

	svc := p.svc
	return p, tea.Batch(p.input.Init(), func() tea.Msg {
		reply := svc.Reply(context.Background(), text)
		return assistantReplyMsg{
			Message: assistant.NewMessage(reply, assistant.SenderBot),
		}
	})
}

// View renders the panel at the given height.
func (p assistantPanel) View(height int) string {
	inner := panelWidth - 4

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Study Assistant"))
	b.WriteString("\n\n")

	userStyle := lipgloss.NewStyle().Width(inner).Foreground(theme.Secondary)
	botStyle := lipgloss.NewStyle().Width(inner).Foreground(theme.Text)

	for _, m := range p.messages {
		switch m.Sender {
		case assistant.SenderUser:
			b.WriteString(userStyle.Render("You: " + m.Content))
		default:
			b.WriteString(botStyle.Render(m.Content))
		}
		b.WriteString("\n\n")
	}

	if p.waiting {
		b.WriteString(lipgloss.NewStyle().
			Width(inner).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Thinking..."))
		b.WriteString("\n\n")
	} else if len(p.messages) == 1 {
		b.WriteString(lipgloss.NewStyle().
			Width(inner).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Try: " + strings.Join(assistant.QuickReplies, " · ")))
		b.WriteString("\n\n")
	}

	b.WriteString(p.input.View())

	// Trim conversation from the top when it outgrows the panel.
	content := b.String()
	lines := strings.Split(content, "\n")
	maxLines := height - 2
	if maxLines > 4 && len(lines) > maxLines {
		kept := lines[len(lines)-maxLines:]
		content = fmt.Sprintf("…\n%s", strings.Join(kept, "\n"))
	}

	return lipgloss.NewStyle().
		Width(panelWidth - 2).
		Height(height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Render(content)
}
