// Package reference loads the static GWI field-reference documents at
// startup. The engine never reads these mid-turn; they exist so the
// presentation layer can answer "what fields are available?" style
// questions and show a degraded banner when the documents are missing.
package reference

import (
	"os"
	"path/filepath"
	"strings"
)

// documentNames are the reference files shipped alongside the binary.
var documentNames = []string{
	"GWI_CORE_context.txt",
	"GWI_TRAVEL_context.txt",
	"GWI_USA_context.txt",
}

// Library holds whatever reference documents could be read.
type Library struct {
	Documents map[string]string
	Missing   []string
}

// Load reads the known documents from dir. Missing or unreadable files
// are recorded, not fatal: a chat without reference documents still
// works, it just cannot show the field documentation.
func Load(dir string) *Library {
	lib := &Library{Documents: map[string]string{}}

	for _, name := range documentNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			lib.Missing = append(lib.Missing, name)
			continue
		}
		lib.Documents[name] = string(data)
	}

	return lib
}

// Degraded reports whether any document failed to load.
func (l *Library) Degraded() bool {
	return len(l.Missing) > 0
}

// Core returns the main GWI Core reference text, empty when missing.
func (l *Library) Core() string {
	return l.Documents["GWI_CORE_context.txt"]
}

// searchLimit caps how many matching lines a documentation answer
// quotes back.
const searchLimit = 5

// Search returns up to searchLimit lines of the core reference document
// that contain the query, case-insensitively. An empty query or a
// missing document yields nothing.
func (l *Library) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(l.Core(), "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			out = append(out, line)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}
