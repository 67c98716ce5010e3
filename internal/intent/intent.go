package intent

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	DefineAudience Intent = "define_audience"
	AddCriteria    Intent = "add_criteria"
	RemoveCriteria Intent = "remove_criteria"
	GenerateQuery  Intent = "generate_query"
	RefineAudience Intent = "refine_audience"
)
