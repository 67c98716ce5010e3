package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
  ██████╗ ██╗    ██╗██╗
 ██╔════╝ ██║    ██║██║
 ██║  ███╗██║ █╗ ██║██║
 ██║   ██║██║███╗██║██║
 ╚██████╔╝╚███╔███╔╝██║
  ╚═════╝  ╚══╝╚══╝ ╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)
	subtitle := styleSubtitle.Render("Core Translator — audience to boolean logic")

	var chips strings.Builder
	chips.WriteString(styleSubtitle.Render("\nTry one of these, or describe your own audience:\n\n"))
	for _, s := range a.state.suggestions {
		chips.WriteString(styleChip.Render("  - " + s))
		chips.WriteString("\n")
	}

	inputBox := styleInputBox.Width(min(70, a.width-4)).Render(a.state.input.View())

	var banner string
	if a.state.library.Degraded() {
		banner = styleBanner.Render("reference documents missing — field documentation unavailable") + "\n"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		chips.String(),
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-3,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusBar := styleStatusBar.Render("[Enter] Send  [Tab] Suggestion  [F1] Help  [Esc] Quit")
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, banner+statusLine)
}
