package intent

import "strings"

// rule pairs an intent with the prefixes that trigger it. Rules are
// evaluated in slice order and the first matching prefix wins, so the
// order below is load-bearing: "audience" must be checked before "and",
// otherwise "audience of managers" would classify as add_criteria.
type rule struct {
	intent   Intent
	prefixes []string
}

var rules = []rule{
	{DefineAudience, []string{"describe", "define", "target", "audience", "segment", "who", "people", "users", "customers"}},
	{AddCriteria, []string{"add", "include", "also", "plus", "and", "with", "having"}},
	{RemoveCriteria, []string{"remove", "exclude", "not", "without", "except"}},
	{GenerateQuery, []string{"generate", "create", "build", "make", "show", "give", "query", "boolean", "logic"}},
	{RefineAudience, []string{"refine", "adjust", "modify", "change", "update", "improve"}},
}

// Classify maps an utterance to an intent by matching trigger prefixes
// against the start of the normalized input. Unmatched input defaults to
// DefineAudience. Always returns a value; never errors.
func Classify(utterance string) Intent {
	input := strings.ToLower(strings.TrimSpace(utterance))

	for _, r := range rules {
		for _, p := range r.prefixes {
			if strings.HasPrefix(input, p) {
				return r.intent
			}
		}
	}

	return DefineAudience
}
