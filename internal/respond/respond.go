// Package respond formats the engine's structured replies. It consumes
// the narrow contract the core exposes (segments, intent, suggestions)
// and produces display text plus the chips and buttons the presentation
// layer renders. Nothing here mutates conversation state.
package respond

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/catalog"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/intent"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/query"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/segment"
)

//go:embed welcome.md
var welcomeText string

//go:embed onboarding.md
var onboardingText string

// ActionKind identifies what an action button does when pressed.
type ActionKind string

const (
	ActionAddCriteria   ActionKind = "add_criteria"
	ActionGenerateQuery ActionKind = "generate_query"
	ActionRefine        ActionKind = "refine_audience"
	ActionClear         ActionKind = "clear_audience"
)

// Priority distinguishes the primary affordance from secondary ones.
type Priority string

const (
	Primary   Priority = "primary"
	Secondary Priority = "secondary"
)

// Action is one button offered alongside a response.
type Action struct {
	Label    string
	Kind     ActionKind
	Priority Priority
}

// Response is the structured reply handed to the presentation layer.
// BooleanOutput is only set when the turn produced a query.
type Response struct {
	Content       string
	BooleanOutput string
	Suggestions   []string
	Actions       []Action
}

// Generate dispatches on the classified intent and renders the matching
// template over the current segments.
func Generate(segments []segment.Segment, in intent.Intent, suggestions []string) Response {
	switch in {
	case intent.DefineAudience:
		return defineResponse(segments, suggestions)
	case intent.AddCriteria:
		return addResponse(segments, suggestions)
	case intent.GenerateQuery:
		return queryResponse(segments, suggestions)
	case intent.RefineAudience:
		return refineResponse(segments, suggestions)
	case intent.RemoveCriteria:
		return removalResponse(segments, suggestions)
	default:
		return defaultResponse(suggestions)
	}
}

// Welcome returns the opening message shown before any utterance.
func Welcome() Response {
	return Response{
		Content: welcomeText,
		Suggestions: []string{
			"Professional males 30-45 in technology",
			"Millennial women interested in sustainability",
			"University students aged 18-25",
			"What fields are available?",
		},
	}
}

// ReferenceAnswer quotes matching lines from the field-reference
// documentation back to the user. Documentation questions never touch
// the audience state; the presentation layer answers them directly.
func ReferenceAnswer(lines []string) Response {
	content := fmt.Sprintf(`Based on GWI Core Q2 2024 data:

%s

Would you like me to help you create a boolean logic expression based on this information?`,
		strings.Join(lines, "\n"))

	return Response{
		Content: content,
		Suggestions: []string{
			"Create Boolean logic for this audience",
			"Show more detailed variables",
			"Map to specific platform targeting",
		},
	}
}

// FieldGuide lists every catalog field with its category, description,
// and permitted values. Answers "what fields are available?" style
// questions.
func FieldGuide() Response {
	var b strings.Builder
	b.WriteString("# Available GWI Core Q2 2024 Fields\n\n")
	for _, f := range catalog.All() {
		fmt.Fprintf(&b, "- **%s** (%s): %s — values: %s\n",
			f.Name, f.Category, f.Description, strings.Join(f.Values, ", "))
	}
	b.WriteString("\nDescribe your target audience and I will map it onto these fields.")

	return Response{
		Content: b.String(),
		Suggestions: []string{
			"Professional males 30-45 in technology",
			"Millennial women interested in sustainability",
			"University students aged 18-25",
		},
	}
}

func describe(segments []segment.Segment) string {
	labels := make([]string, len(segments))
	for i, s := range segments {
		labels[i] = s.Label
	}
	return strings.Join(labels, ", ")
}

func breakdown(segments []segment.Segment) string {
	lines := make([]string, len(segments))
	for i, s := range segments {
		lines[i] = fmt.Sprintf("- **%s**: %s", s.Criteria, s.BooleanLogic)
	}
	return strings.Join(lines, "\n")
}

func averageConfidence(segments []segment.Segment) int {
	if len(segments) == 0 {
		return 0
	}
	var sum float64
	for _, s := range segments {
		sum += s.Confidence
	}
	return int(sum/float64(len(segments))*100 + 0.5)
}

func defineResponse(segments []segment.Segment, suggestions []string) Response {
	if len(segments) == 0 {
		return Response{
			Content: onboardingText,
			Suggestions: []string{
				"Try example audience",
				"What fields are available?",
				"Show me demographic options",
			},
		}
	}

	content := fmt.Sprintf(`# Audience Analysis Complete

**Target Audience**: %s

**Identified Segments**:
%s

**Confidence Level**: %d%%

The audience has been successfully analyzed and mapped to GWI Core Q2 2024 fields.`,
		describe(segments), breakdown(segments), averageConfidence(segments))

	return Response{
		Content:     content,
		Suggestions: suggestions,
		Actions: []Action{
			{Label: "Generate Boolean Query", Kind: ActionGenerateQuery, Priority: Primary},
			{Label: "Add More Criteria", Kind: ActionAddCriteria, Priority: Secondary},
			{Label: "Refine Audience", Kind: ActionRefine, Priority: Secondary},
		},
	}
}

func addResponse(segments []segment.Segment, suggestions []string) Response {
	recent := segments
	if len(recent) > 2 {
		recent = recent[len(recent)-2:]
	}

	content := fmt.Sprintf(`# Criteria Added

**Updated Audience**: %s

**Recently Added**:
%s

**Total Segments**: %d`,
		describe(segments), breakdown(recent), len(segments))

	return Response{
		Content:     content,
		Suggestions: suggestions,
		Actions: []Action{
			{Label: "Generate Boolean Query", Kind: ActionGenerateQuery, Priority: Primary},
			{Label: "Add More Criteria", Kind: ActionAddCriteria, Priority: Secondary},
			{Label: "Clear All", Kind: ActionClear, Priority: Secondary},
		},
	}
}

func queryResponse(segments []segment.Segment, suggestions []string) Response {
	structure := make([]string, len(segments))
	for i, s := range segments {
		structure[i] = fmt.Sprintf("%d. %s -> %s", i+1, s.Criteria, s.BooleanLogic)
	}

	content := fmt.Sprintf(`# Boolean Query Generated

**Target Audience**: %s

**Query Structure**:
%s

**Completion Status**: Ready for GWI Core Q2 2024

**Next Steps**:
1. Copy the boolean query below
2. Paste into GWI Core platform
3. Execute query and analyze results
4. Refine targeting as needed`,
		describe(segments), strings.Join(structure, "\n"))

	// Offering "Generate boolean query" right after generating one is
	// noise, so those chips are dropped.
	var kept []string
	for _, s := range suggestions {
		if !strings.Contains(s, "Generate") {
			kept = append(kept, s)
		}
	}

	return Response{
		Content:       content,
		BooleanOutput: query.Synthesize(segments),
		Suggestions:   kept,
		Actions: []Action{
			{Label: "Refine Query", Kind: ActionRefine, Priority: Secondary},
			{Label: "Add More Criteria", Kind: ActionAddCriteria, Priority: Secondary},
			{Label: "Start Over", Kind: ActionClear, Priority: Secondary},
		},
	}
}

func refineResponse(segments []segment.Segment, suggestions []string) Response {
	precision := "Basic"
	switch {
	case len(segments) > 3:
		precision = "High"
	case len(segments) > 1:
		precision = "Medium"
	}

	content := fmt.Sprintf(`# Audience Refined

**Updated Target**: %s

**Current Segments**: %d
**Targeting Precision**: %s

The audience definition has been updated with your refinements.`,
		describe(segments), len(segments), precision)

	return Response{
		Content:     content,
		Suggestions: suggestions,
		Actions: []Action{
			{Label: "Generate Boolean Query", Kind: ActionGenerateQuery, Priority: Primary},
			{Label: "Add More Criteria", Kind: ActionAddCriteria, Priority: Secondary},
			{Label: "Refine Further", Kind: ActionRefine, Priority: Secondary},
		},
	}
}

func removalResponse(segments []segment.Segment, suggestions []string) Response {
	audience := "No criteria defined"
	footer := "Criteria successfully removed from audience definition."
	if len(segments) > 0 {
		audience = describe(segments)
	} else {
		footer = "All criteria have been removed. Please define a new audience."
	}

	content := fmt.Sprintf(`# Criteria Removed

**Remaining Audience**: %s

**Active Segments**: %d

%s`, audience, len(segments), footer)

	actions := []Action{
		{Label: "Generate Boolean Query", Kind: ActionGenerateQuery, Priority: Primary},
		{Label: "Add More Criteria", Kind: ActionAddCriteria, Priority: Secondary},
	}
	if len(segments) == 0 {
		actions = []Action{
			{Label: "Define New Audience", Kind: ActionAddCriteria, Priority: Primary},
		}
	}

	return Response{
		Content:     content,
		Suggestions: suggestions,
		Actions:     actions,
	}
}

func defaultResponse(suggestions []string) Response {
	return Response{
		Content: `# GWI Core Boolean Logic Assistant

I can help you translate audience descriptions into GWI Core boolean logic. Please describe your target audience or ask me about:

- Available GWI Core fields and values
- Boolean logic syntax
- Audience translation examples
- Platform-specific conversions`,
		Suggestions: suggestions,
		Actions: []Action{
			{Label: "Show Available Fields", Kind: ActionAddCriteria, Priority: Secondary},
			{Label: "Try Example Audience", Kind: ActionAddCriteria, Priority: Secondary},
		},
	}
}
