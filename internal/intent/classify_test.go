package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{
			name:      "define from example audience",
			utterance: "Professional males 30-45, managers in technology, active LinkedIn users",
			want:      DefineAudience,
		},
		{
			name:      "target prefix",
			utterance: "Target women in finance",
			want:      DefineAudience,
		},
		{
			name:      "add criteria",
			utterance: "Add organic buyers",
			want:      AddCriteria,
		},
		{
			name:      "also counts as add",
			utterance: "also include students",
			want:      AddCriteria,
		},
		{
			name:      "remove criteria",
			utterance: "Remove the age range",
			want:      RemoveCriteria,
		},
		{
			name:      "exclude counts as remove",
			utterance: "exclude managers",
			want:      RemoveCriteria,
		},
		{
			name:      "generate query",
			utterance: "Generate the boolean query",
			want:      GenerateQuery,
		},
		{
			name:      "show counts as generate",
			utterance: "show me the query",
			want:      GenerateQuery,
		},
		{
			name:      "refine",
			utterance: "Refine this audience a bit",
			want:      RefineAudience,
		},
		{
			name:      "no trigger falls back to define",
			utterance: "Millennial women interested in sustainability",
			want:      DefineAudience,
		},
		{
			name:      "empty input falls back to define",
			utterance: "",
			want:      DefineAudience,
		},
		{
			name:      "case insensitive",
			utterance: "ADD more criteria",
			want:      AddCriteria,
		},
		{
			// Prefix matching is deliberately loose: "android" starts
			// with the add_criteria trigger "and".
			name:      "prefix match is not word-bounded",
			utterance: "android users",
			want:      AddCriteria,
		},
		{
			// "audience" sits in the define rule, which runs before the
			// add rule, so the "and" prefix inside never gets a chance.
			name:      "define rule wins over add rule",
			utterance: "audience of organic buyers",
			want:      DefineAudience,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.utterance); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	utterance := "add managers and also students"
	first := Classify(utterance)
	for i := 0; i < 50; i++ {
		if got := Classify(utterance); got != first {
			t.Fatalf("Classify changed answer on call %d: %q vs %q", i, got, first)
		}
	}
}
