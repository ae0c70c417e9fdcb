package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpv/episcreen/internal/diagnosis"
	"github.com/mcpv/episcreen/internal/screening"
)

var flagNames = []string{"a", "b"}

func perfectInputs() ([][]screening.Value, []diagnosis.Vector, []diagnosis.Vector) {
	flags := [][]screening.Value{
		{screening.Undefined, screening.Undefined},
		{screening.Yes, screening.No},
		{screening.No, screening.No},
	}
	vectors := []diagnosis.Vector{
		{Indeterminate: true},
		{NonEpileptic: true},
		{Epileptic: true},
	}
	truth := make([]diagnosis.Vector, len(vectors))
	copy(truth, vectors)
	return flags, vectors, truth
}

func TestCompute_PerfectAgreement(t *testing.T) {
	flags, predicted, truth := perfectInputs()

	rep, err := Compute(flagNames, flags, predicted, truth)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Summary.Patients)
	assert.Equal(t, 2, rep.Summary.FlagColumns)

	// One indeterminate prediction leaves two decisive rows, both
	// correct.
	assert.Equal(t, 2, rep.Performance.Accuracy.Decisive)
	assert.Equal(t, 2, rep.Performance.Accuracy.Correct)
	assert.Equal(t, 1.0, rep.Performance.Accuracy.Fraction)
	assert.Equal(t, 1.0, rep.Performance.BalancedAccuracy)
}

func TestCompute_DiagnosisCounts(t *testing.T) {
	flags, predicted, truth := perfectInputs()

	rep, err := Compute(flagNames, flags, predicted, truth)
	require.NoError(t, err)

	for _, counts := range []map[string]int{rep.Counts.Diagnoses.Predicted, rep.Counts.Diagnoses.True} {
		assert.Equal(t, 1, counts["indeterminate"])
		assert.Equal(t, 1, counts["non_epilepsy"])
		assert.Equal(t, 1, counts["epilepsy"])
		assert.Equal(t, 0, counts["focal"])
	}
}

func TestCompute_FlagCohortBreakdown(t *testing.T) {
	flags, predicted, truth := perfectInputs()

	rep, err := Compute(flagNames, flags, predicted, truth)
	require.NoError(t, err)
	require.Len(t, rep.Counts.Flags, 2)

	first := rep.Counts.Flags[0]
	assert.Equal(t, "a", first.Flag)
	assert.Equal(t, ValueCounts{Undefined: 1}, first.Cohorts["indeterminate"])
	assert.Equal(t, ValueCounts{Yes: 1}, first.Cohorts["non_epilepsy"])
	assert.Equal(t, ValueCounts{No: 1}, first.Cohorts["epilepsy"])

	second := rep.Counts.Flags[1]
	assert.Equal(t, ValueCounts{No: 1}, second.Cohorts["non_epilepsy"])
	assert.Equal(t, ValueCounts{No: 1}, second.Cohorts["epilepsy"])
}

func TestCompute_IndeterminatePredictionsExcluded(t *testing.T) {
	flags := [][]screening.Value{{screening.Undefined}, {screening.No}}
	predicted := []diagnosis.Vector{
		{Indeterminate: true},
		{Epileptic: true},
	}
	// The indeterminate prediction disagrees with its true label but
	// must not count against accuracy.
	truth := []diagnosis.Vector{
		{NonEpileptic: true},
		{Epileptic: true},
	}

	rep, err := Compute([]string{"a"}, flags, predicted, truth)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Performance.Accuracy.Decisive)
	assert.Equal(t, 1.0, rep.Performance.Accuracy.Fraction)
}

func TestCompute_BalancedAccuracyWeighsClasses(t *testing.T) {
	flags := [][]screening.Value{{screening.No}, {screening.No}, {screening.No}, {screening.No}}
	// Three epileptic rows all correct, one non-epileptic row wrong:
	// accuracy 0.75, balanced accuracy (1.0 + 0.0) / 2 = 0.5.
	predicted := []diagnosis.Vector{
		{Epileptic: true},
		{Epileptic: true},
		{Epileptic: true},
		{Epileptic: true},
	}
	truth := []diagnosis.Vector{
		{Epileptic: true},
		{Epileptic: true},
		{Epileptic: true},
		{NonEpileptic: true},
	}

	rep, err := Compute([]string{"a"}, flags, predicted, truth)
	require.NoError(t, err)
	assert.Equal(t, 0.75, rep.Performance.Accuracy.Fraction)
	assert.Equal(t, 0.5, rep.Performance.BalancedAccuracy)
}

func TestCompute_RowMismatch(t *testing.T) {
	flags := [][]screening.Value{{screening.No}}
	_, err := Compute([]string{"a"}, flags, nil, []diagnosis.Vector{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row mismatch")
}

func TestCompute_Deterministic(t *testing.T) {
	flags, predicted, truth := perfectInputs()

	first, err := Compute(flagNames, flags, predicted, truth)
	require.NoError(t, err)
	second, err := Compute(flagNames, flags, predicted, truth)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
