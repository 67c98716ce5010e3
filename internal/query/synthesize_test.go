package query

import (
	"reflect"
	"testing"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/segment"
)

func TestSynthesizeEmpty(t *testing.T) {
	if got := Synthesize(nil); got != "" {
		t.Errorf("Synthesize(nil) = %q, want empty", got)
	}
	if got := Synthesize([]segment.Segment{}); got != "" {
		t.Errorf("Synthesize([]) = %q, want empty", got)
	}
}

func TestSynthesizeJoinsInOrder(t *testing.T) {
	segments := []segment.Segment{
		segment.New("gender", "Male", "Male professionals", "gender == 'Male'"),
		segment.New("age", "30-45", "Ages 30-45", "age >= 30 AND age <= 45"),
		segment.New("industry", "Technology", "Technology industry", "industry == 'Technology'"),
	}

	want := "gender == 'Male' AND age >= 30 AND age <= 45 AND industry == 'Technology'"
	if got := Synthesize(segments); got != want {
		t.Errorf("Synthesize() = %q, want %q", got, want)
	}
}

func TestSynthesizeIdempotent(t *testing.T) {
	segments := []segment.Segment{
		segment.New("gender", "Female", "Female professionals", "gender == 'Female'"),
		segment.New("country_residence", "USA", "United States residents", "country_residence == 'USA'"),
	}

	first := Synthesize(segments)
	second := Synthesize(segments)
	if first != second {
		t.Errorf("Synthesize not idempotent: %q vs %q", first, second)
	}
}

func TestSynthesizeKeepsContradictions(t *testing.T) {
	segments := []segment.Segment{
		segment.New("age", "18-25", "Ages 18-25", "age >= 18 AND age <= 25"),
		segment.New("age", "30-45", "Ages 30-45", "age >= 30 AND age <= 45"),
	}

	want := "age >= 18 AND age <= 25 AND age >= 30 AND age <= 45"
	if got := Synthesize(segments); got != want {
		t.Errorf("Synthesize() = %q, want unsanitized conjunction %q", got, want)
	}
}

func TestConflicts(t *testing.T) {
	segments := []segment.Segment{
		segment.New("age", "18-25", "Ages 18-25", "age >= 18 AND age <= 25"),
		segment.New("gender", "Male", "Male professionals", "gender == 'Male'"),
		segment.New("age", "30-45", "Ages 30-45", "age >= 30 AND age <= 45"),
	}

	if got := Conflicts(segments); !reflect.DeepEqual(got, []string{"age"}) {
		t.Errorf("Conflicts() = %v, want [age]", got)
	}
	if got := Conflicts(segments[1:2]); got != nil {
		t.Errorf("Conflicts() on unique fields = %v, want nil", got)
	}
}
