package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/config"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/engine"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/reference"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/respond"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/segment"
)

type state struct {
	// Wiring
	config  *config.Config
	engine  *engine.Engine
	library *reference.Library

	// Input
	input textinput.Model

	// Transcript
	messages     []message
	scrollOffset int

	// Last response affordances
	suggestions []string
	actions     []respond.Action
	suggestIdx  int

	// Audience panel, kept current via the state manager subscription
	audience  []segment.Segment
	showPanel bool

	// Last config write failure, surfaced in the status bar
	saveErr error

	// Markdown rendering, rebuilt on resize
	renderer *glamour.TermRenderer
}

type message struct {
	role     string
	raw      string
	rendered string
	boolean  string
}

func newState(cfg *config.Config, eng *engine.Engine, lib *reference.Library) *state {
	input := textinput.New()
	input.Placeholder = "Describe your target audience..."
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	return &state{
		config:    cfg,
		engine:    eng,
		library:   lib,
		input:     input,
		showPanel: cfg.ShowPanel,
	}
}
