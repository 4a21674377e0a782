// Package home is the application's main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateeks/prepdeck/internal/backend"
	hist "github.com/prateeks/prepdeck/internal/history"
	res "github.com/prateeks/prepdeck/internal/resources"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	historyscreen "github.com/prateeks/prepdeck/internal/screens/history"
	resourcescreen "github.com/prateeks/prepdeck/internal/screens/resources"
	"github.com/prateeks/prepdeck/internal/screens/tests"
	"github.com/prateeks/prepdeck/internal/ui/components"
	"github.com/prateeks/prepdeck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗ ███████╗██████╗ ██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 ██████╔╝██████╔╝█████╗  ██████╔╝██║  ██║█████╗  ██║     █████╔╝
 ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝ ██║  ██║██╔══╝  ██║     ██╔═██╗
 ██║     ██║  ██║███████╗██║     ██████╔╝███████╗╚██████╗██║  ██╗
 ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝     ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "P R E P D E C K"

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	store *hist.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the backend and history store.
func New(svc backend.Service, store *hist.Store, resources *res.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE A TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tests.NewConfig(svc, store)}
			}
		}},
		{Label: "TEST HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(store)}
			}
		}},
		{Label: "RESOURCES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: resourcescreen.New(resources)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		store: store,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Entrance exam prep from your terminal")
	sections = append(sections, tagline)

	if n := h.store.Len(); n > 0 {
		stats := h.renderStats(n)
		sections = append(sections, "", stats)
	}

	sections = append(sections, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStats summarizes the archive: test count and latest score.
func (h *HomeScreen) renderStats(count int) string {
	label := "tests"
	if count == 1 {
		label = "test"
	}
	line := fmt.Sprintf("%d %s taken", count, label)

	if entries := h.store.List(); len(entries) > 0 {
		line += fmt.Sprintf(" · last score %d%%", entries[0].Result.ScorePercent)
	}

	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderBanner returns the PREPDECK banner, falling back to a compact
// form for terminals narrower than the ASCII art.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
