package dataset

import "github.com/mcpv/episcreen/internal/screening"

// Roster is the ordered patient list with each patient's responses.
// Order is the document order of the input JSON and fixes the row
// order of every downstream matrix.
type Roster struct {
	ids       []string
	responses map[string]screening.Responses
}

// IDs returns the patient identifiers in document order.
func (r *Roster) IDs() []string { return r.ids }

// Len returns the patient count.
func (r *Roster) Len() int { return len(r.ids) }

// Responses returns one patient's answers.
func (r *Roster) Responses(id string) screening.Responses {
	return r.responses[id]
}

// Ordered returns every patient's responses in roster order.
func (r *Roster) Ordered() []screening.Responses {
	out := make([]screening.Responses, len(r.ids))
	for i, id := range r.ids {
		out[i] = r.responses[id]
	}
	return out
}

// CodeTable maps patient id to billing codes.
type CodeTable map[string][]string

// Ordered returns the code lists in the given patient order, so the
// true matrix rows line up with the roster.
func (t CodeTable) Ordered(ids []string) [][]string {
	out := make([][]string, len(ids))
	for i, id := range ids {
		out[i] = t[id]
	}
	return out
}
