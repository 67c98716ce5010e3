// Package conversation owns the mutable audience state for one chat
// session: the current segments, the append-only turn log, and the
// derived context (last intent, pending suggestions, current query).
// One Manager per session; the conversation loop is the only writer.
package conversation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/intent"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/segment"
)

// Turn is one exchange in the conversation log. Turns are append-only;
// they are never edited or removed individually.
type Turn struct {
	ID        string
	Utterance string
	Response  string
	At        time.Time
	Changes   []segment.Segment
}

// Context carries the derived conversational state alongside the
// audience itself.
type Context struct {
	LastIntent         intent.Intent
	PendingSuggestions []string
	CurrentQuery       string
}

// State is a point-in-time snapshot of the session. Snapshots are
// structurally independent of the Manager's internals: callers may
// mutate them freely.
type State struct {
	Audience []segment.Segment
	History  []Turn
	Context  Context
}

// Observer receives a snapshot after every mutation. Observers run
// synchronously in registration order; a panicking observer propagates
// to the mutating caller.
type Observer func(State)

type observerEntry struct {
	id int
	fn Observer
}

// Manager holds the session state. Not safe for concurrent use; each
// session gets its own instance.
type Manager struct {
	state      State
	observers  []observerEntry
	nextObs    int
	historyCap int
}

// New creates an empty session. historyCap limits the retained turn log;
// 0 keeps every turn.
func New(historyCap int) *Manager {
	return &Manager{
		state: State{
			Context: Context{LastIntent: intent.DefineAudience},
		},
		historyCap: historyCap,
	}
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() State {
	return copyState(m.state)
}

// Replace overwrites the audience wholesale. Used when a fresh audience
// definition supersedes whatever was accumulated.
func (m *Manager) Replace(segments []segment.Segment) {
	m.state.Audience = copySegments(segments)
	m.notify()
}

// Append concatenates segments onto the audience. No deduplication:
// adding the same criterion twice keeps both.
func (m *Manager) Append(segments []segment.Segment) {
	m.state.Audience = append(m.state.Audience, copySegments(segments)...)
	m.notify()
}

// Remove drops the segment with the given id. Unknown ids are a silent
// no-op, but observers are still notified.
func (m *Manager) Remove(id string) {
	kept := m.state.Audience[:0]
	for _, s := range m.state.Audience {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	m.state.Audience = kept
	m.notify()
}

// removalGroups maps trigger words in a removal utterance to the
// criteria substring that gets filtered out. Matching is deliberately
// coarse: any segment whose criteria text contains the substring goes,
// even if the user meant a different field.
var removalGroups = []struct {
	triggers []string
	criteria string
}{
	{[]string{"gender", "male", "female"}, "gender"},
	{[]string{"age"}, "age"},
	{[]string{"job", "manager"}, "job_level"},
}

// RemoveByKeyword filters out segments named by the removal utterance.
func (m *Manager) RemoveByKeyword(utterance string) {
	input := strings.ToLower(utterance)

	for _, g := range removalGroups {
		matched := false
		for _, t := range g.triggers {
			if strings.Contains(input, t) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		kept := m.state.Audience[:0]
		for _, s := range m.state.Audience {
			if !strings.Contains(s.Criteria, g.criteria) {
				kept = append(kept, s)
			}
		}
		m.state.Audience = kept
	}

	m.notify()
}

// SetContext records the classified intent and the suggestions pending
// for the next turn.
func (m *Manager) SetContext(last intent.Intent, suggestions []string) {
	m.state.Context.LastIntent = last
	m.state.Context.PendingSuggestions = append([]string(nil), suggestions...)
	m.notify()
}

// SetCurrentQuery stores the most recently synthesized query.
func (m *Manager) SetCurrentQuery(query string) {
	m.state.Context.CurrentQuery = query
	m.notify()
}

// RecordTurn appends an exchange to the conversation log with a snapshot
// of the segments it produced. When a history cap is configured the
// oldest turns are trimmed.
func (m *Manager) RecordTurn(utterance, response string, changes []segment.Segment) {
	m.state.History = append(m.state.History, Turn{
		ID:        uuid.NewString(),
		Utterance: utterance,
		Response:  response,
		At:        time.Now(),
		Changes:   copySegments(changes),
	})
	if m.historyCap > 0 && len(m.state.History) > m.historyCap {
		m.state.History = m.state.History[len(m.state.History)-m.historyCap:]
	}
	m.notify()
}

// ClearAudience empties the segment list. The turn log survives.
func (m *Manager) ClearAudience() {
	m.state.Audience = nil
	m.notify()
}

// Describe summarizes the audience as a comma-joined label list.
func (m *Manager) Describe() string {
	if len(m.state.Audience) == 0 {
		return "No audience defined"
	}
	labels := make([]string, len(m.state.Audience))
	for i, s := range m.state.Audience {
		labels[i] = s.Label
	}
	return strings.Join(labels, ", ")
}

// Subscribe registers an observer and returns its unsubscribe func.
// Unsubscribing twice is harmless.
func (m *Manager) Subscribe(fn Observer) func() {
	id := m.nextObs
	m.nextObs++
	m.observers = append(m.observers, observerEntry{id: id, fn: fn})

	return func() {
		for i, e := range m.observers {
			if e.id == id {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Manager) notify() {
	for _, e := range m.observers {
		e.fn(m.Snapshot())
	}
}

func copySegments(segments []segment.Segment) []segment.Segment {
	if segments == nil {
		return nil
	}
	out := make([]segment.Segment, len(segments))
	copy(out, segments)
	return out
}

func copyState(s State) State {
	out := State{
		Audience: copySegments(s.Audience),
		History:  make([]Turn, len(s.History)),
		Context:  s.Context,
	}
	for i, turn := range s.History {
		turn.Changes = copySegments(turn.Changes)
		out.History[i] = turn
	}
	out.Context.PendingSuggestions = append([]string(nil), s.Context.PendingSuggestions...)
	return out
}
