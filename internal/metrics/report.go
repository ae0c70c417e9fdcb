package metrics

// Report is the deterministic agreement summary between predicted and
// true diagnoses. It is plain data; rendering and persistence live at
// the boundary.
type Report struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Summary     Summary     `json:"summary"`
	Counts      Counts      `json:"counts"`
	Performance Performance `json:"performance"`
}

// Summary carries the matrix shapes.
type Summary struct {
	Patients         int `json:"patients"`
	FlagColumns      int `json:"flag_columns"`
	DiagnosisColumns int `json:"diagnosis_columns"`
}

// Counts holds positive-diagnosis totals and the per-flag cohort
// breakdown.
type Counts struct {
	Diagnoses DiagnosisCounts `json:"diagnoses"`
	Flags     []FlagBreakdown `json:"flags"`
}

// DiagnosisCounts are positive-row counts per diagnosis category for
// both matrices.
type DiagnosisCounts struct {
	Predicted map[string]int `json:"predicted"`
	True      map[string]int `json:"true"`
}

// FlagBreakdown audits one flag column: for each true-diagnosis
// cohort, how often the flag was negative, positive, or undefined.
type FlagBreakdown struct {
	Flag    string                 `json:"flag"`
	Cohorts map[string]ValueCounts `json:"cohorts"`
}

// ValueCounts are tri-state tallies for one flag within one cohort.
type ValueCounts struct {
	No        int `json:"no"`
	Yes       int `json:"yes"`
	Undefined int `json:"undefined"`
}

// Performance scores predicted against true on the decisive
// epilepsy/non-epilepsy axis; rows predicted Indeterminate are
// excluded so the figures measure only decisive calls.
type Performance struct {
	Accuracy         Accuracy `json:"accuracy"`
	BalancedAccuracy float64  `json:"balanced_accuracy"`
}

// Accuracy is the raw correct count and its share of decisive rows.
type Accuracy struct {
	Correct  int     `json:"correct"`
	Decisive int     `json:"decisive"`
	Fraction float64 `json:"fraction"`
}
