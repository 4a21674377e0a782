package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateeks/prepdeck/internal/assistant"
	"github.com/prateeks/prepdeck/internal/backend"
	hist "github.com/prateeks/prepdeck/internal/history"
	res "github.com/prateeks/prepdeck/internal/resources"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	"github.com/prateeks/prepdeck/internal/screens/home"
	"github.com/prateeks/prepdeck/internal/screens/welcome"
	"github.com/prateeks/prepdeck/internal/ui/layout"
)

// Options wires the application's collaborators.
type Options struct {
	Backend   backend.Service
	History   *hist.Store
	Resources *res.Service
	Assistant *assistant.Assistant
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	history *hist.Store
	panel   assistantPanel
	width   int
	height  int

	panelOpen bool
}

// newAppModel creates a new AppModel that opens on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Backend, opts.History, opts.Resources)
	}
	return AppModel{
		router:  router.New(welcome.New(homeFactory)),
		history: opts.History,
		panel:   newAssistantPanel(opts.Assistant),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case assistantReplyMsg:
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+a":
			m.panelOpen = !m.panelOpen
			if m.panelOpen {
				return m, m.panel.Init()
			}
			return m, nil
		}

		// An open panel captures keyboard input.
		if m.panelOpen {
			if msg.String() == "esc" {
				m.panelOpen = false
				return m, nil
			}
			var cmd tea.Cmd
			m.panel, cmd = m.panel.Update(msg)
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	mainWidth := m.width
	if m.panelOpen {
		mainWidth = m.width - panelWidth
		if mainWidth < layout.MinWidth/2 {
			mainWidth = layout.MinWidth / 2
		}
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.history.Len(), mainWidth)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, mainWidth)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(mainWidth, contentHeight)
	frame := layout.RenderFrame(header, content, footer, mainWidth, m.height)

	if m.panelOpen {
		frame = lipgloss.JoinHorizontal(lipgloss.Top, frame, m.panel.View(m.height))
	}

	v.SetContent(frame)
	return v
}

// footerHints picks the footer key hints: the active screen's own if it
// provides them, generic navigation otherwise.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if m.panelOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Close assistant"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	var hints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+A", Description: "Assistant"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
