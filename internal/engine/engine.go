// Package engine runs one conversation turn end to end: classify the
// utterance, extract segments, mutate the audience state, synthesize
// the query when asked, and format the reply. One utterance is fully
// processed before the next is accepted; there is no I/O and no
// cancellation inside a turn.
package engine

import (
	"go.uber.org/zap"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/conversation"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/intent"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/query"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/respond"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/segment"
)

type Engine struct {
	extractor *segment.Extractor
	state     *conversation.Manager
	log       *zap.Logger
}

// New wires an engine to a session's state manager. The logger may be
// zap.NewNop(); it must not be nil.
func New(state *conversation.Manager, log *zap.Logger) *Engine {
	return &Engine{
		extractor: segment.NewExtractor(),
		state:     state,
		log:       log,
	}
}

// State exposes the underlying session manager, mainly so the
// presentation layer can subscribe to mutations.
func (e *Engine) State() *conversation.Manager {
	return e.state
}

// Welcome returns the opening message for a fresh session.
func (e *Engine) Welcome() respond.Response {
	return respond.Welcome()
}

// Process handles one utterance and returns the formatted reply. Every
// turn is recorded in the conversation log with the audience that was
// active once the turn's mutation settled.
func (e *Engine) Process(utterance string) respond.Response {
	in := intent.Classify(utterance)

	var suggestions []string
	switch in {
	case intent.DefineAudience:
		extracted := e.extractor.Extract(utterance)
		e.state.Replace(extracted)
		suggestions = refinementSuggestions(extracted)
	case intent.AddCriteria:
		e.state.Append(e.extractor.Extract(utterance))
		suggestions = []string{"Generate boolean query", "Add more criteria", "Refine existing criteria"}
	case intent.RemoveCriteria:
		e.state.RemoveByKeyword(utterance)
		suggestions = []string{"Add different criteria", "Generate boolean query", "Start over"}
	case intent.GenerateQuery:
		suggestions = []string{"Refine query", "Add more criteria", "Export to different format"}
	case intent.RefineAudience:
		e.state.Append(e.extractor.Extract(utterance))
		suggestions = []string{"Generate boolean query", "Add more criteria", "Remove criteria"}
	}

	e.state.SetContext(in, suggestions)

	snap := e.state.Snapshot()
	if in == intent.GenerateQuery {
		e.state.SetCurrentQuery(query.Synthesize(snap.Audience))
	}

	resp := respond.Generate(snap.Audience, in, suggestions)
	e.state.RecordTurn(utterance, resp.Content, snap.Audience)

	e.log.Info("turn processed",
		zap.String("intent", string(in)),
		zap.Int("audience_size", len(snap.Audience)),
		zap.Int("turn", len(e.state.Snapshot().History)),
	)

	return resp
}

// Clear empties the audience on behalf of a clear_audience action
// button. The turn log survives, and the clearing itself is logged as a
// turn so the transcript stays complete.
func (e *Engine) Clear() respond.Response {
	e.state.ClearAudience()
	e.state.SetContext(intent.RemoveCriteria, []string{"Define new audience", "Try example audience"})

	resp := respond.Generate(nil, intent.RemoveCriteria, []string{"Define new audience", "Try example audience"})
	e.state.RecordTurn("Clear audience", resp.Content, nil)

	e.log.Info("audience cleared")
	return resp
}

// refinementSuggestions points out the big targeting dimensions the
// audience does not cover yet.
func refinementSuggestions(segments []segment.Segment) []string {
	covered := map[string]bool{}
	for _, s := range segments {
		covered[s.Field()] = true
	}

	var out []string
	if !covered["gender"] {
		out = append(out, "Add gender targeting")
	}
	if !covered["age"] {
		out = append(out, "Add age range")
	}
	if !covered["job_level"] {
		out = append(out, "Add job level")
	}
	if !covered["industry"] {
		out = append(out, "Add industry focus")
	}
	return append(out, "Generate boolean query")
}
