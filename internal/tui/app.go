package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/config"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/conversation"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/engine"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/reference"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/respond"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.Config, eng *engine.Engine, lib *reference.Library) *App {
	s := newState(cfg, eng, lib)

	// Keep the panel in sync with every audience mutation, including
	// ones triggered outside the submit path.
	eng.State().Subscribe(func(snap conversation.State) {
		s.audience = snap.Audience
	})

	welcome := eng.Welcome()
	s.suggestions = welcome.Suggestions
	s.messages = append(s.messages, message{role: "assistant", raw: welcome.Content})

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.rebuildRenderer()
	}

	if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewChat
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		if a.view == viewHelp {
			a.view = viewChat
		} else {
			a.view = viewHelp
		}
		return nil

	case key.Matches(msg, keys.Enter):
		a.submit()
		return nil

	case key.Matches(msg, keys.Suggest):
		a.cycleSuggestion()
		return nil

	case key.Matches(msg, keys.Generate):
		a.runAction(respond.ActionGenerateQuery)
		return nil

	case key.Matches(msg, keys.Clear):
		a.runAction(respond.ActionClear)
		return nil

	case key.Matches(msg, keys.Panel):
		a.state.showPanel = !a.state.showPanel
		a.state.config.ShowPanel = a.state.showPanel
		if err := a.state.config.Save(); err != nil {
			a.state.saveErr = err
		}
		return nil

	case key.Matches(msg, keys.Up):
		a.state.scrollOffset++
		return nil

	case key.Matches(msg, keys.Down):
		if a.state.scrollOffset > 0 {
			a.state.scrollOffset--
		}
		return nil
	}

	return nil
}

// submit sends the typed utterance through the engine and appends both
// sides of the exchange to the transcript. Processing is synchronous
// and fast, so no command or spinner is involved.
func (a *App) submit() {
	text := strings.TrimSpace(a.state.input.Value())
	if text == "" {
		return
	}
	a.state.input.Reset()

	a.state.messages = append(a.state.messages, message{role: "user", raw: text})

	// Documentation questions are answered here from the reference
	// documents and the catalog; the engine and the audience state only
	// see audience-building turns.
	if resp, ok := a.documentationAnswer(text); ok {
		a.appendBot(resp)
		a.view = viewChat
		return
	}

	a.appendBot(a.state.engine.Process(text))
	a.view = viewChat
}

// documentationAnswer resolves utterances that ask about the reference
// material. Lines of the core document containing the full question are
// quoted back; failing that, questions mentioning fields or variables
// get the catalog listing.
func (a *App) documentationAnswer(text string) (respond.Response, bool) {
	if lines := a.state.library.Search(text); len(lines) > 0 {
		return respond.ReferenceAnswer(lines), true
	}

	q := strings.ToLower(text)
	if strings.Contains(q, "field") || strings.Contains(q, "variable") {
		return respond.FieldGuide(), true
	}

	return respond.Response{}, false
}

// runAction executes an action button's behavior. Generate and clear go
// straight to the engine; the add/refine affordances just prime the
// input since they need the user to say what to add.
func (a *App) runAction(kind respond.ActionKind) {
	switch kind {
	case respond.ActionGenerateQuery:
		a.state.messages = append(a.state.messages, message{role: "user", raw: "Generate boolean query"})
		a.appendBot(a.state.engine.Process("Generate boolean query"))
		a.view = viewChat
	case respond.ActionClear:
		a.appendBot(a.state.engine.Clear())
		a.view = viewChat
	case respond.ActionAddCriteria:
		a.state.input.Placeholder = "Add more criteria..."
	case respond.ActionRefine:
		a.state.input.Placeholder = "Refine your audience..."
	}
}

func (a *App) appendBot(resp respond.Response) {
	a.state.suggestions = resp.Suggestions
	a.state.actions = resp.Actions
	a.state.suggestIdx = 0
	a.state.scrollOffset = 0
	a.state.messages = append(a.state.messages, message{
		role:     "assistant",
		raw:      resp.Content,
		rendered: a.renderMarkdown(resp.Content),
		boolean:  resp.BooleanOutput,
	})
}

// cycleSuggestion fills the input with the next pending suggestion chip.
func (a *App) cycleSuggestion() {
	if len(a.state.suggestions) == 0 {
		return
	}
	a.state.input.SetValue(a.state.suggestions[a.state.suggestIdx%len(a.state.suggestions)])
	a.state.input.CursorEnd()
	a.state.suggestIdx++
}

func (a *App) rebuildRenderer() {
	wrap := min(70, a.width-4)
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return
	}
	a.state.renderer = r

	// Re-render the transcript at the new width.
	for i, m := range a.state.messages {
		if m.role == "assistant" {
			a.state.messages[i].rendered = a.renderMarkdown(m.raw)
		}
	}
}

// renderMarkdown renders bot markdown, falling back to the raw text
// before the first resize arrives.
func (a *App) renderMarkdown(raw string) string {
	if a.state.renderer == nil {
		return raw
	}
	out, err := a.state.renderer.Render(raw)
	if err != nil {
		return raw
	}
	return strings.TrimRight(out, "\n")
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderChat()
	}
}
