package diagnosis

import "github.com/mcpv/episcreen/internal/screening"

// FlagClassifier maps a flag row to a predicted diagnosis by walking
// fixed decision blocks. A row narrower than the screening block is a
// caller contract violation and is not defended against.
type FlagClassifier struct {
	thresholds Thresholds
}

func NewFlagClassifier(t Thresholds) *FlagClassifier {
	return &FlagClassifier{thresholds: t}
}

// Classify walks the decision tree over one flag row.
//
// Screening block: too many Undefined flags means the patient cannot
// be judged at all; any positive flag points away from epilepsy.
// Rows carrying the sub-typing columns continue into the focal and
// generalized blocks, each gated by its own Undefined threshold; a
// block that cannot be judged stops the walk with the bits set so far.
func (c *FlagClassifier) Classify(row []screening.Value) Vector {
	var v Vector

	scr := row[:screening.ScreeningFlagCount]
	if undefinedCount(scr) > c.thresholds.Screening {
		v.Indeterminate = true
		return v
	}
	if anyPositive(scr) {
		v.NonEpileptic = true
		return v
	}
	v.Epileptic = true

	if len(row) < screening.ExtendedFlagCount {
		return v
	}

	focal := row[screening.FlagLesion:screening.FlagOnset21]
	if undefinedCount(focal) > c.thresholds.Focal {
		return v
	}
	if row[screening.FlagOnset21] == screening.Yes || anyPositive(focal) {
		v.Focal = true
		return v
	}

	gen := row[screening.FlagStaring : screening.FlagTonicClonic+1]
	if undefinedCount(gen) > c.thresholds.Generalized {
		return v
	}
	if !anyPositive(gen) {
		v.UnknownOnset = true
		return v
	}
	if row[screening.FlagStaring] == screening.Yes {
		v.Absence = true
	}
	if row[screening.FlagJerks] == screening.Yes {
		v.Myoclonic = true
	}
	if row[screening.FlagTonicClonic] == screening.Yes {
		v.GTCS = true
	}
	v.Generalized = true
	return v
}

// ClassifyAll maps a flag matrix to the predicted diagnosis matrix,
// preserving row order.
func (c *FlagClassifier) ClassifyAll(matrix [][]screening.Value) []Vector {
	out := make([]Vector, len(matrix))
	for i, row := range matrix {
		out[i] = c.Classify(row)
	}
	return out
}

func undefinedCount(vals []screening.Value) int {
	n := 0
	for _, v := range vals {
		if v == screening.Undefined {
			n++
		}
	}
	return n
}

func anyPositive(vals []screening.Value) bool {
	for _, v := range vals {
		if v == screening.Yes {
			return true
		}
	}
	return false
}
