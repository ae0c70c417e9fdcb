package dataset

import (
	"fmt"

	"github.com/mcpv/episcreen/internal/screening"
)

// Check runs the preflight checks on the loaded inputs before the
// core pipeline sees them. Any failure is fatal: the run aborts with
// a descriptive error and no output is written.
//
// Checks:
//  1. the responses and billing-codes documents cover the same number
//     of patients;
//  2. every patient carries every question of the survey schema, even
//     if unanswered;
//  3. no patient carries a question outside the schema.
func Check(roster *Roster, codes CodeTable, questions screening.QuestionSet) error {
	if roster.Len() != len(codes) {
		return fmt.Errorf(
			"patient count mismatch: %d patients with responses, %d with billing codes",
			roster.Len(), len(codes),
		)
	}

	expected := questions.AllQuestions()
	for _, id := range roster.IDs() {
		responses := roster.Responses(id)
		for _, question := range expected {
			if _, ok := responses[question]; !ok {
				return fmt.Errorf("patient %q is missing question %q", id, question)
			}
		}
		if len(responses) != len(expected) {
			return fmt.Errorf(
				"patient %q has %d questions, expected %d",
				id, len(responses), len(expected),
			)
		}
	}
	return nil
}
