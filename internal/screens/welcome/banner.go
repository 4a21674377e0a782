package welcome

import (
	"charm.land/lipgloss/v2"

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

// RenderBanner returns the PREPDECK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 68 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
