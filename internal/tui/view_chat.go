package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/respond"
)

func (a *App) renderChat() string {
	panelWidth := 0
	if a.state.showPanel {
		panelWidth = min(34, a.width/3)
	}
	chatWidth := a.width - panelWidth
	boxWidth := min(70, chatWidth-4)
	if boxWidth < 20 {
		boxWidth = 20
	}
	leftPad := (chatWidth - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 2
	footerHeight := 5 // input box + chips + status bar
	availableHeight := a.height - headerHeight - footerHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === HEADER ===
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("GWI Core Translator")
	header := lipgloss.PlaceHorizontal(chatWidth, lipgloss.Center, title) + "\n\n"

	// === TRANSCRIPT LINES ===
	var messageLines []string
	for _, msg := range a.state.messages {
		if msg.role == "user" {
			content := wrapText(msg.raw, boxWidth-4)
			for j, line := range strings.Split(content, "\n") {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().Foreground(colorSecondary).Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			rendered := msg.rendered
			if rendered == "" {
				rendered = msg.raw
			}
			for _, line := range strings.Split(rendered, "\n") {
				messageLines = append(messageLines, indent+line)
			}
			if msg.boolean != "" {
				box := styleQueryBox.Width(boxWidth).Render(wrapText(msg.boolean, boxWidth-2))
				for _, line := range strings.Split(box, "\n") {
					messageLines = append(messageLines, indent+line)
				}
			}
		}
		messageLines = append(messageLines, "")
	}

	// === SCROLL ===
	totalLines := len(messageLines)
	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}

	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}
	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	transcript := strings.Join(visibleLines, "\n")
	for i := len(visibleLines); i < availableHeight; i++ {
		transcript += "\n"
	}

	// === FOOTER ===
	var footer strings.Builder

	if chips := a.renderChips(boxWidth); chips != "" {
		footer.WriteString(lipgloss.PlaceHorizontal(chatWidth, lipgloss.Center, chips))
	}
	footer.WriteString("\n")

	inputBox := styleInputBox.Width(boxWidth).Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(chatWidth, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	var statusParts []string
	if a.state.library.Degraded() {
		statusParts = append(statusParts, styleBanner.Render("no reference docs"))
	}
	if a.state.saveErr != nil {
		statusParts = append(statusParts, styleBanner.Render("config not saved"))
	}
	if a.state.scrollOffset > 0 {
		statusParts = append(statusParts, "[scroll]")
	}
	statusParts = append(statusParts, a.renderActionHints())
	statusParts = append(statusParts, "[Ctrl+P] Panel  [F1] Help  [Esc] Quit")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(chatWidth, lipgloss.Center, status))

	chat := header + transcript + "\n" + footer.String()

	if !a.state.showPanel {
		return chat
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chat, a.renderPanel(panelWidth))
}

// renderChips shows the pending suggestion chips; Tab cycles them into
// the input.
func (a *App) renderChips(boxWidth int) string {
	if len(a.state.suggestions) == 0 {
		return ""
	}
	parts := make([]string, len(a.state.suggestions))
	for i, s := range a.state.suggestions {
		parts[i] = "[" + s + "]"
	}
	return styleChip.Render(truncate(strings.Join(parts, " "), boxWidth))
}

// renderActionHints maps the current action buttons to their hotkeys.
func (a *App) renderActionHints() string {
	var parts []string
	for _, act := range a.state.actions {
		switch act.Kind {
		case respond.ActionGenerateQuery:
			parts = append(parts, "[Ctrl+G] "+act.Label)
		case respond.ActionClear:
			parts = append(parts, "[Ctrl+X] "+act.Label)
		}
	}
	if len(parts) == 0 {
		return "[Enter] Send"
	}
	return strings.Join(parts, "  ")
}

// wrapText wraps text at word boundaries
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	if len(text) <= maxWidth {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}
