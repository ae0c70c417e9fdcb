package screening

// Category groups related survey questions so a flag's criteria can
// scope which answers are relevant to it.
type Category string

const (
	CategoryBefore   Category = "before"
	CategoryDuring   Category = "during"
	CategoryDuration Category = "duration"
)

// Responses is one patient's question -> free-text answer map.
// An empty string means the question was not answered. Immutable
// once ingested.
type Responses map[string]string

// QuestionSet maps each criteria category to its fixed question list.
// The survey schema is a constant of the study, not per-run input.
type QuestionSet map[Category][]string

// DefaultQuestionSet returns the seizure questionnaire schema.
func DefaultQuestionSet() QuestionSet {
	return QuestionSet{
		CategoryBefore: {
			"What other things do you experience right before or at the beginning of a seizure?",
			"Please describe what you feel right before or at the beginning of a seizure.",
			"Please specify other warning.",
			"Which warnings do you get before you have a seizure?",
		},
		CategoryDuring: {
			"Please specify other symptoms.",
			"Describe what happens during your seizures.",
		},
		CategoryDuration: {
			"How long do your seizures last?",
		},
	}
}

// extraQuestions are survey questions carried in the input documents
// but not bound to any criteria category.
var extraQuestions = []string{
	"Please specify other injuries.",
}

// AllQuestions returns every question a patient record must carry,
// in a stable order.
func (qs QuestionSet) AllQuestions() []string {
	out := make([]string, 0, 8)
	for _, cat := range []Category{CategoryBefore, CategoryDuring, CategoryDuration} {
		out = append(out, qs[cat]...)
	}
	out = append(out, extraQuestions...)
	return out
}

// AnyAnswered reports whether the patient gave at least one non-empty
// answer to any question.
func (r Responses) AnyAnswered() bool {
	for _, answer := range r {
		if answer != "" {
			return true
		}
	}
	return false
}
