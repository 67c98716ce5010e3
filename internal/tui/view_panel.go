package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/query"
)

// renderPanel shows the live audience: every active segment with its
// criteria, plus a conflict note when one field contributes multiple
// clauses.
func (a *App) renderPanel(width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(stylePanelTitle.Render("Audience"))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(fmt.Sprintf("%d segment(s)", len(a.state.audience))))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(truncate(a.state.engine.State().Describe(), inner)))
	b.WriteString("\n\n")

	for _, s := range a.state.audience {
		b.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Render(truncate(s.Label, inner)))
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render(truncate(s.Criteria, inner)))
		b.WriteString("\n")
	}

	if conflicts := query.Conflicts(a.state.audience); len(conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(styleBanner.Render(truncate("multiple clauses: "+strings.Join(conflicts, ", "), inner)))
		b.WriteString("\n")
	}

	return stylePanel.Width(width - 2).Height(a.height - 2).Render(b.String())
}
