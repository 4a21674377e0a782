package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/prateeks/prepdeck/internal/ui/theme"
)

// ChipGroup is a horizontal multi-select of short labels. Used for
// picking focus topics when configuring a test.
type ChipGroup struct {
	Chips    []string
	Cursor   int
	selected map[int]bool
}

// NewChipGroup creates a chip group with nothing selected.
func NewChipGroup(chips []string) ChipGroup {
	return ChipGroup{
		Chips:    chips,
		selected: make(map[int]bool),
	}
}

// Update handles navigation and toggling.
func (c ChipGroup) Update(msg tea.Msg) (ChipGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Chips)-1 {
			c.Cursor++
		}
	case "enter", " ":
		if c.Cursor >= 0 && c.Cursor < len(c.Chips) {
			c.selected[c.Cursor] = !c.selected[c.Cursor]
		}
	}

	return c, nil
}

// Choose marks the chip with the given label as selected, if present.
func (c ChipGroup) Choose(label string) {
	for i, chip := range c.Chips {
		if chip == label {
			c.selected[i] = true
			return
		}
	}
}

// Selected returns the selected labels in display order.
func (c ChipGroup) Selected() []string {
	var out []string
	for i, chip := range c.Chips {
		if c.selected[i] {
			out = append(out, chip)
		}
	}
	return out
}

// View renders the chips in a single row.
func (c ChipGroup) View() string {
	parts := make([]string, 0, len(c.Chips))
	for i, chip := range c.Chips {
		label := chip
		if c.selected[i] {
			label = "✓ " + chip
		}
		if i == c.Cursor {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		if c.selected[i] {
			parts = append(parts, theme.ChipSelected.Render(label))
		} else {
			parts = append(parts, theme.Chip.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
