package diagnosis

import "strings"

// CodeSets are the ICD-10 prefixes that anchor the true diagnosis.
// Matching is by prefix, not exact equality, so "G40.0" covers
// "G40.011" and the like.
type CodeSets struct {
	NonEpilepsy  []string
	Focal        []string
	Generalized  []string
	UnknownOnset []string
}

// DefaultCodeSets returns the study's code groups: syncope, PNES and
// other paroxysmal events on the non-epilepsy side; G40 sub-ranges
// split by onset on the epilepsy side.
func DefaultCodeSets() CodeSets {
	return CodeSets{
		NonEpilepsy:  []string{"R55", "F44.5", "G43"},
		Focal:        []string{"G40.0", "G40.1", "G40.2"},
		Generalized:  []string{"G40.3", "G40.4"},
		UnknownOnset: []string{"G40.5", "G40.8", "G40.9"},
	}
}

// CodeClassifier derives the true diagnosis from a patient's billing
// codes, independent of the questionnaire.
type CodeClassifier struct {
	sets CodeSets
}

func NewCodeClassifier(sets CodeSets) *CodeClassifier {
	return &CodeClassifier{sets: sets}
}

// Classify maps a billing-code list to a diagnosis vector. An empty
// list, or one matching no known code set, is Indeterminate. Adding a
// matching code can only switch bits on, never off.
func (c *CodeClassifier) Classify(codes []string) Vector {
	var v Vector

	if matchesAny(codes, c.sets.NonEpilepsy) {
		v.NonEpileptic = true
	}
	if matchesAny(codes, c.sets.Focal) {
		v.Focal = true
		v.Epileptic = true
	}
	if matchesAny(codes, c.sets.Generalized) {
		v.Generalized = true
		v.Epileptic = true
	}
	if matchesAny(codes, c.sets.UnknownOnset) {
		v.UnknownOnset = true
		v.Epileptic = true
	}

	if !v.NonEpileptic && !v.Epileptic {
		v.Indeterminate = true
	}
	return v
}

// ClassifyAll maps each patient's code list to the true diagnosis
// matrix, in the given patient order.
func (c *CodeClassifier) ClassifyAll(codeLists [][]string) []Vector {
	out := make([]Vector, len(codeLists))
	for i, codes := range codeLists {
		out[i] = c.Classify(codes)
	}
	return out
}

func matchesAny(codes, prefixes []string) bool {
	for _, code := range codes {
		for _, prefix := range prefixes {
			if strings.HasPrefix(code, prefix) {
				return true
			}
		}
	}
	return false
}
