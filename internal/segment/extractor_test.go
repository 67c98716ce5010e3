package segment

import (
	"strings"
	"testing"
)

func fieldsOf(segments []Segment) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = s.Field()
	}
	return out
}

func TestExtractFullExample(t *testing.T) {
	e := NewExtractor()
	segments := e.Extract("Professional males 30-45, managers in technology, active LinkedIn users")

	want := []string{"gender", "age", "job_level", "industry", "linkedin_usage"}
	got := fieldsOf(segments)
	if len(got) != len(want) {
		t.Fatalf("extracted %d segments %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d field = %q, want %q", i, got[i], want[i])
		}
	}

	if segments[0].Label != "Male" {
		t.Errorf("gender label = %q, want Male", segments[0].Label)
	}
	if segments[1].Label != "30-45" {
		t.Errorf("age label = %q, want 30-45", segments[1].Label)
	}
	if segments[2].Label != "Manager" {
		t.Errorf("job label = %q, want Manager", segments[2].Label)
	}
}

func TestExtractGenderFamily(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name      string
		utterance string
		wantLabel string
		wantLogic string
	}{
		{
			name:      "male only",
			utterance: "male gamers",
			wantLabel: "Male",
			wantLogic: "gender == 'Male'",
		},
		{
			name:      "women is always Female",
			utterance: "women in tech",
			wantLabel: "Female",
			wantLogic: "gender == 'Female'",
		},
		{
			name:      "female never yields Male",
			utterance: "female founders",
			wantLabel: "Female",
			wantLogic: "gender == 'Female'",
		},
		{
			name:      "male and female collapses to one segment",
			utterance: "male and female shoppers",
			wantLabel: "Female",
			wantLogic: "gender == 'Female'",
		},
		{
			// "women" alone does not contain "female", so the Male
			// branch wins whenever a bare "male" appears alongside it.
			name:      "women with bare male resolves to Male",
			utterance: "male shoppers and women",
			wantLabel: "Male",
			wantLogic: "gender == 'Male'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := e.Extract(tt.utterance)

			var genderSegments []Segment
			for _, s := range segments {
				if s.Field() == "gender" {
					genderSegments = append(genderSegments, s)
				}
			}
			if len(genderSegments) != 1 {
				t.Fatalf("got %d gender segments, want exactly 1", len(genderSegments))
			}
			if genderSegments[0].Label != tt.wantLabel {
				t.Errorf("gender label = %q, want %q", genderSegments[0].Label, tt.wantLabel)
			}
			if genderSegments[0].BooleanLogic != tt.wantLogic {
				t.Errorf("gender logic = %q, want %q", genderSegments[0].BooleanLogic, tt.wantLogic)
			}
		})
	}
}

func TestExtractAgePriority(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name      string
		utterance string
		wantLabel string
	}{
		{"30-45 wins over 25-40", "people aged 25 to 45, around 30 or 40", "30-45"},
		{"25-40 bracket", "adults 25 to 40", "25-40"},
		{"18-25 bracket", "young adults 18 to 25", "18-25"},
		{"millennial keyword", "millennial shoppers", "Millennial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := e.Extract(tt.utterance)

			var ages []Segment
			for _, s := range segments {
				if s.Field() == "age" {
					ages = append(ages, s)
				}
			}
			if len(ages) != 1 {
				t.Fatalf("got %d age segments, want exactly 1", len(ages))
			}
			if ages[0].Label != tt.wantLabel {
				t.Errorf("age label = %q, want %q", ages[0].Label, tt.wantLabel)
			}
		})
	}
}

func TestExtractMillennialMapsTo25to40(t *testing.T) {
	e := NewExtractor()
	segments := e.Extract("millennial women interested in sustainability")

	got := fieldsOf(segments)
	want := []string{"gender", "age", "attitude_sustainability"}
	if len(got) != len(want) {
		t.Fatalf("extracted fields %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d field = %q, want %q", i, got[i], want[i])
		}
	}
	if segments[1].BooleanLogic != "age >= 25 AND age <= 40" {
		t.Errorf("millennial logic = %q", segments[1].BooleanLogic)
	}
}

func TestExtractStudentFallsToEducationStatus(t *testing.T) {
	e := NewExtractor()
	segments := e.Extract("university students")

	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Field() != "education_status" {
		t.Errorf("field = %q, want education_status", segments[0].Field())
	}
	if segments[0].BooleanLogic != "education_status == 'Currently studying'" {
		t.Errorf("logic = %q", segments[0].BooleanLogic)
	}
}

func TestExtractNoSignals(t *testing.T) {
	e := NewExtractor()
	if segments := e.Extract("hello there"); len(segments) != 0 {
		t.Errorf("got %d segments for signal-free input, want 0", len(segments))
	}
}

func TestExtractIsPure(t *testing.T) {
	e := NewExtractor()
	a := e.Extract("organic buyers in the usa")
	b := e.Extract("organic buyers in the usa")

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("got %d and %d segments, want 2 and 2", len(a), len(b))
	}
	for i := range a {
		// IDs are generated fresh per call; everything else must agree.
		if a[i].Criteria != b[i].Criteria || a[i].BooleanLogic != b[i].BooleanLogic || a[i].Label != b[i].Label {
			t.Errorf("segment %d differs across calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSegmentIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s := New("gender", "Male", "Male professionals", "gender == 'Male'")
		if !strings.HasPrefix(s.ID, "gender_") {
			t.Fatalf("id %q missing field prefix", s.ID)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestSegmentCategoryFromCatalog(t *testing.T) {
	s := New("linkedin_usage", "Active", "Active LinkedIn users", "linkedin_usage == 'Active'")
	if s.Category != "behavioral" {
		t.Errorf("category = %q, want behavioral", s.Category)
	}
	if s.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", s.Confidence)
	}
}
