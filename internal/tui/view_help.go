package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	title := styleLogo.Render("Help")

	rows := []struct{ key, desc string }{
		{"enter", "send the typed utterance"},
		{"tab", "cycle suggestion chips into the input"},
		{"ctrl+g", "generate the boolean query"},
		{"ctrl+x", "clear the audience (history is kept)"},
		{"ctrl+p", "toggle the audience panel"},
		{"up/down", "scroll the transcript"},
		{"f1", "toggle this help"},
		{"esc", "quit"},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(lipgloss.NewStyle().Foreground(colorSecondary).Width(10).Render(r.key))
		b.WriteString(styleSubtitle.Render(r.desc))
		b.WriteString("\n")
	}

	tips := styleSubtitle.Render(`
Describe an audience in plain language, for example:
  "Professional males 30-45, managers in technology"
Then add, remove, or refine criteria turn by turn, and
generate the boolean query when the audience looks right.`)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", b.String(), tips)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
