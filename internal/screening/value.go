package screening

// Value is the tri-state result of evaluating a flag against a
// patient's answers. The zero value is Undefined so an unevaluated
// cell never reads as a clinical negative.
type Value uint8

const (
	Undefined Value = iota
	No
	Yes
)

func (v Value) String() string {
	switch v {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "undefined"
	}
}

// Float converts a Value to its serialized form: 1, 0, or nil for
// Undefined. Used only at the output boundary.
func (v Value) Float() *float64 {
	switch v {
	case Yes:
		one := 1.0
		return &one
	case No:
		zero := 0.0
		return &zero
	default:
		return nil
	}
}

func boolValue(b bool) Value {
	if b {
		return Yes
	}
	return No
}
