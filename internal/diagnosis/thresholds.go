package diagnosis

// Thresholds are the undefined-count gates for each decision block:
// a block with more Undefined flags than its gate cannot be judged.
// Carried as configuration pending clinical sign-off, not literals.
type Thresholds struct {
	Screening   int
	Focal       int
	Generalized int
}

// DefaultThresholds returns the gates of the reference algorithm.
func DefaultThresholds() Thresholds {
	return Thresholds{Screening: 3, Focal: 2, Generalized: 2}
}
