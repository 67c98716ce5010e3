package catalog

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name         string
		field        string
		wantFound    bool
		wantCategory Category
	}{
		{"gender field", "gender", true, Demographic},
		{"linkedin usage", "linkedin_usage", true, Behavioral},
		{"sustainability attitude", "attitude_sustainability", true, Psychographic},
		{"country", "country_residence", true, Geographic},
		{"unknown field", "favorite_color", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.field)
			if ok != tt.wantFound {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.field, ok, tt.wantFound)
			}
			if ok && f.Category != tt.wantCategory {
				t.Errorf("Lookup(%q) category = %q, want %q", tt.field, f.Category, tt.wantCategory)
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	if len(a) != 11 {
		t.Fatalf("All() returned %d fields, want 11", len(a))
	}

	a[0].Name = "mutated"
	if b := All(); b[0].Name == "mutated" {
		t.Error("mutating All() result leaked into the catalog")
	}
}

func TestOperatorsPresent(t *testing.T) {
	for _, f := range All() {
		if len(f.Operators) == 0 {
			t.Errorf("field %q has no operators", f.Name)
		}
		if len(f.Values) == 0 {
			t.Errorf("field %q has no values", f.Name)
		}
	}
}
