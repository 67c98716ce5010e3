package segment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/catalog"
)

// Segment is one atomic targeting criterion. BooleanLogic is a
// self-contained predicate clause (a complete `field op value` comparison
// or a parenthesized disjunction) so that any set of segments can be
// conjoined into a well-formed query.
type Segment struct {
	ID           string
	Label        string
	Criteria     string
	BooleanLogic string
	Confidence   float64
	Category     catalog.Category
}

// defaultConfidence applies to every rule-extracted segment. The
// detectors are fixed substring triggers, so there is no per-match
// scoring to differentiate them.
const defaultConfidence = 0.8

// New builds a segment for a catalog field. The id combines the field
// name, a millisecond timestamp, and a random suffix; ids must be unique
// but are not required to be monotonic.
func New(field, value, label, logic string) Segment {
	category := catalog.Demographic
	if f, ok := catalog.Lookup(field); ok {
		category = f.Category
	}

	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return Segment{
		ID:           fmt.Sprintf("%s_%d_%s", field, time.Now().UnixMilli(), suffix),
		Label:        label,
		Criteria:     fmt.Sprintf("%s: %s", field, value),
		BooleanLogic: logic,
		Confidence:   defaultConfidence,
		Category:     category,
	}
}

// Field returns the catalog field name encoded in the criteria text.
func (s Segment) Field() string {
	name, _, _ := strings.Cut(s.Criteria, ":")
	return name
}
