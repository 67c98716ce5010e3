package catalog

// Category classifies a field within the GWI Core taxonomy.
type Category string

const (
	Demographic   Category = "demographic"
	Behavioral    Category = "behavioral"
	Psychographic Category = "psychographic"
	Geographic    Category = "geographic"
)

// Field describes one targetable GWI Core field: its permitted values,
// the operators a boolean clause may use against it, and a short
// human-readable description.
type Field struct {
	Name        string
	Category    Category
	Values      []string
	Operators   []string
	Description string
}

// fields is the GWI Core Q2 2024 taxonomy. Loaded once, never mutated.
var fields = []Field{
	{
		Name:        "gender",
		Category:    Demographic,
		Values:      []string{"Male", "Female", "Non-binary", "Prefer not to say"},
		Operators:   []string{"==", "!="},
		Description: "Gender identity",
	},
	{
		Name:        "age",
		Category:    Demographic,
		Values:      []string{"18-24", "25-34", "35-44", "45-54", "55-64"},
		Operators:   []string{">=", "<=", "==", "!="},
		Description: "Age range",
	},
	{
		Name:        "job_level",
		Category:    Demographic,
		Values:      []string{"Entry Level", "Mid Level", "Senior Level", "Manager", "Director", "Executive"},
		Operators:   []string{"==", "!="},
		Description: "Professional job level",
	},
	{
		Name:        "industry",
		Category:    Demographic,
		Values:      []string{"Technology", "Healthcare", "Finance", "Education", "Retail", "Manufacturing"},
		Operators:   []string{"==", "!="},
		Description: "Industry sector",
	},
	{
		Name:        "education_level",
		Category:    Demographic,
		Values:      []string{"High School", "Some College", "Bachelor's", "Master's", "PhD"},
		Operators:   []string{">=", "<=", "==", "!="},
		Description: "Education level",
	},
	{
		Name:        "education_status",
		Category:    Demographic,
		Values:      []string{"Currently studying", "Completed", "Not applicable"},
		Operators:   []string{"==", "!="},
		Description: "Current education status",
	},
	{
		Name:        "linkedin_usage",
		Category:    Behavioral,
		Values:      []string{"Active", "Occasional", "Rarely", "Never"},
		Operators:   []string{"==", "!="},
		Description: "LinkedIn platform usage",
	},
	{
		Name:        "attitude_sustainability",
		Category:    Psychographic,
		Values:      []string{"Very Important", "Important", "Somewhat Important", "Not Important"},
		Operators:   []string{"==", "!="},
		Description: "Attitude toward sustainability",
	},
	{
		Name:        "interest_environment",
		Category:    Psychographic,
		Values:      []string{"1", "0"},
		Operators:   []string{"==", "!="},
		Description: "Interest in environmental issues",
	},
	{
		Name:        "product_purchase_organic",
		Category:    Behavioral,
		Values:      []string{"1", "0"},
		Operators:   []string{"==", "!="},
		Description: "Purchase organic products",
	},
	{
		Name:        "country_residence",
		Category:    Geographic,
		Values:      []string{"USA", "UK", "Canada", "Australia", "Germany", "France"},
		Operators:   []string{"==", "!="},
		Description: "Country of residence",
	},
}

// Lookup returns the field with the given name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// All returns a copy of the full field table.
func All() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
