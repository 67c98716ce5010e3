// Package query turns an ordered audience into one boolean expression.
package query

import (
	"strings"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/segment"
)

// Synthesize joins every segment's boolean-logic fragment with AND, in
// sequence order. An empty audience yields an empty string, not an
// error. No deduplication and no contradiction detection: two mutually
// exclusive age brackets both survive and the result can be
// unsatisfiable. That is the contract; see Conflicts for an inspection
// helper that never alters the output.
func Synthesize(segments []segment.Segment) string {
	if len(segments) == 0 {
		return ""
	}

	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.BooleanLogic
	}
	return strings.Join(parts, " AND ")
}

// Conflicts reports fields that contribute more than one clause to the
// conjunction, in first-appearance order. Purely informational;
// Synthesize never consults it.
func Conflicts(segments []segment.Segment) []string {
	counts := map[string]int{}
	var order []string
	for _, s := range segments {
		f := s.Field()
		if counts[f] == 0 {
			order = append(order, f)
		}
		counts[f]++
	}

	var out []string
	for _, f := range order {
		if counts[f] > 1 {
			out = append(out, f)
		}
	}
	return out
}
