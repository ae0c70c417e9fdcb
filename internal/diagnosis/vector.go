package diagnosis

// Category names one diagnosis column.
type Category string

const (
	CategoryIndeterminate Category = "indeterminate"
	CategoryNonEpilepsy   Category = "non_epilepsy"
	CategoryEpilepsy      Category = "epilepsy"
	CategoryFocal         Category = "focal"
	CategoryGeneralized   Category = "generalized"
	CategoryUnknownOnset  Category = "unknown_onset"
	CategoryAbsence       Category = "absence"
	CategoryMyoclonic     Category = "myoclonic"
	CategoryGTCS          Category = "gtcs"
)

// Columns returns the fixed diagnosis column order shared by the
// predicted and true matrices.
func Columns() []Category {
	return []Category{
		CategoryIndeterminate,
		CategoryNonEpilepsy,
		CategoryEpilepsy,
		CategoryFocal,
		CategoryGeneralized,
		CategoryUnknownOnset,
		CategoryAbsence,
		CategoryMyoclonic,
		CategoryGTCS,
	}
}

// Vector is one patient's diagnosis. Fields are addressed by name
// internally and flattened to column positions only on output.
// Indeterminate excludes every other bit; Epileptic may co-occur with
// sub-type bits. Never mutated after classification.
type Vector struct {
	Indeterminate bool
	NonEpileptic  bool
	Epileptic     bool
	Focal         bool
	Generalized   bool
	UnknownOnset  bool
	Absence       bool
	Myoclonic     bool
	GTCS          bool
}

// On reports whether the given category bit is set.
func (v Vector) On(c Category) bool {
	switch c {
	case CategoryIndeterminate:
		return v.Indeterminate
	case CategoryNonEpilepsy:
		return v.NonEpileptic
	case CategoryEpilepsy:
		return v.Epileptic
	case CategoryFocal:
		return v.Focal
	case CategoryGeneralized:
		return v.Generalized
	case CategoryUnknownOnset:
		return v.UnknownOnset
	case CategoryAbsence:
		return v.Absence
	case CategoryMyoclonic:
		return v.Myoclonic
	case CategoryGTCS:
		return v.GTCS
	default:
		return false
	}
}

// Flatten returns the 0/1 row for the fixed column order.
func (v Vector) Flatten() []int {
	cols := Columns()
	row := make([]int, len(cols))
	for i, c := range cols {
		if v.On(c) {
			row[i] = 1
		}
	}
	return row
}
