package screening

// Extractor turns a patient's answers into one flag-matrix row over a
// fixed, ordered flag set.
type Extractor struct {
	eval  *Evaluator
	flags []FlagDef
}

func NewExtractor(eval *Evaluator, flags []FlagDef) *Extractor {
	return &Extractor{eval: eval, flags: flags}
}

// Width returns the number of flag columns.
func (x *Extractor) Width() int { return len(x.flags) }

// Names returns the flag column names in order.
func (x *Extractor) Names() []string { return FlagNames(x.flags) }

// Extract evaluates every flag for one patient. A patient with no
// non-empty answer at all gets an all-Undefined row without per-flag
// evaluation.
func (x *Extractor) Extract(responses Responses) []Value {
	row := make([]Value, len(x.flags))
	if !responses.AnyAnswered() {
		return row
	}
	for i, def := range x.flags {
		row[i] = x.eval.Evaluate(responses, def.Criteria)
	}
	return row
}

// ExtractAll produces the flag matrix for an ordered patient list.
// Row order is the caller's patient order and is preserved so row i
// refers to the same patient in every downstream matrix.
func (x *Extractor) ExtractAll(patients []Responses) [][]Value {
	matrix := make([][]Value, len(patients))
	for i, responses := range patients {
		matrix[i] = x.Extract(responses)
	}
	return matrix
}
