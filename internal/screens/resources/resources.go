// Package resources renders the study material browser.
package resources

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	res "github.com/prateeks/prepdeck/internal/resources"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
	"github.com/prateeks/prepdeck/internal/ui/components"
	"github.com/prateeks/prepdeck/internal/ui/layout"
	"github.com/prateeks/prepdeck/internal/ui/theme"
)

// listingMsg is sent when the resource lookup finishes. Lookups never
// fail outright; a listing may be flagged as fallback content.
type listingMsg struct {
	Listing *res.Listing
}

// Section tabs in display order.
var sections = []string{"Videos", "Books", "Websites"}

// ResourcesScreen lets the user search study material by topic and
// browse the results in three sections.
type ResourcesScreen struct {
	svc *res.Service

	input   components.TextInput
	listing *res.Listing
	section int
	loading bool
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

// New creates a new ResourcesScreen.
func New(svc *res.Service) *ResourcesScreen {
	return &ResourcesScreen{
		svc:   svc,
		input: components.NewTextInput("Search a topic, e.g. Thermodynamics", false, 60),
	}
}

func (s *ResourcesScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ResourcesScreen) Title() string {
	return "Resources"
}

func (s *ResourcesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "Tab", Description: "Section"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listingMsg:
		s.loading = false
		s.listing = msg.Listing
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.section = (s.section + 1) % len(sections)
			return s, nil
		case "shift+tab":
			s.section = (s.section + len(sections) - 1) % len(sections)
			return s, nil
		case "enter":
			return s.search()
		}
	}

	if !s.loading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResourcesScreen) search() (screen.Screen, tea.Cmd) {
	topic := strings.TrimSpace(s.input.Value())
	if topic == "" || s.loading {
		return s, nil
	}

	s.loading = true
	return s, func() tea.Msg {
		return listingMsg{Listing: s.svc.Fetch(context.Background(), topic)}
	}
}

func (s *ResourcesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Find study material"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 64)).Render(s.input.View())))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Searching..."))
		return b.String()
	}

	if s.listing == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Search a topic to see videos, books and websites."))
		return b.String()
	}

	// Section tabs.
	tabs := make([]string, 0, len(sections))
	for i, name := range sections {
		if i == s.section {
			tabs = append(tabs, theme.Selected.Render("[ "+name+" ]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render("  "+name+"  "))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "  ")))
	b.WriteString("\n")

	if s.listing.Fallback {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Italic(true).
				Render("Showing curated suggestions; live search is unavailable.")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch s.section {
	case 0:
		s.renderVideos(&b, width)
	case 1:
		s.renderBooks(&b, width)
	case 2:
		s.renderSites(&b, width)
	}

	return b.String()
}

func (s *ResourcesScreen) renderVideos(b *strings.Builder, width int) {
	if len(s.listing.Videos) == 0 {
		writeEmpty(b, width, "No videos found.")
		return
	}
	for _, v := range s.listing.Videos {
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(v.Title)
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(v.Channel)
		link := lipgloss.NewStyle().Foreground(theme.Secondary).Render(v.Link)
		writeItem(b, width, title+"\n"+meta+"\n"+link)
	}
}

func (s *ResourcesScreen) renderBooks(b *strings.Builder, width int) {
	if len(s.listing.Books) == 0 {
		writeEmpty(b, width, "No books found.")
		return
	}
	for _, book := range s.listing.Books {
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(book.Title)
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %.1f ★ · %d", book.Author, book.Rating, book.Year))
		writeItem(b, width, title+"\n"+meta)
	}
}

func (s *ResourcesScreen) renderSites(b *strings.Builder, width int) {
	if len(s.listing.Sites) == 0 {
		writeEmpty(b, width, "No websites found.")
		return
	}
	for _, site := range s.listing.Sites {
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(site.Title)
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %s · %s", site.Provider, site.Kind, site.Duration))
		link := lipgloss.NewStyle().Foreground(theme.Secondary).Render(site.Link)
		writeItem(b, width, title+"\n"+meta+"\n"+link)
	}
}

func writeItem(b *strings.Builder, width int, content string) {
	card := lipgloss.NewStyle().Width(min(width-12, 68)).Render(content)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")
}

func writeEmpty(b *strings.Builder, width int, msg string) {
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(msg))
	b.WriteString("\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
