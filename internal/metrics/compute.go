package metrics

import (
	"fmt"

	"github.com/mcpv/episcreen/internal/diagnosis"
	"github.com/mcpv/episcreen/internal/screening"
)

// Cohort keys in FlagBreakdown, keyed by the true diagnosis.
var cohorts = []diagnosis.Category{
	diagnosis.CategoryIndeterminate,
	diagnosis.CategoryNonEpilepsy,
	diagnosis.CategoryEpilepsy,
}

// Compute builds the agreement report from the flag matrix and the
// two diagnosis matrices. All three must be row-aligned to the same
// patient order; mismatched row counts are an error.
func Compute(flagNames []string, flags [][]screening.Value, predicted, truth []diagnosis.Vector) (*Report, error) {
	if len(predicted) != len(flags) || len(truth) != len(flags) {
		return nil, fmt.Errorf(
			"row mismatch: %d flag rows, %d predicted, %d true",
			len(flags), len(predicted), len(truth),
		)
	}

	rep := &Report{
		Name:        "Evaluation 1",
		Description: "Agreement between questionnaire-predicted and billing-code diagnoses.",
		Summary: Summary{
			Patients:         len(flags),
			FlagColumns:      len(flagNames),
			DiagnosisColumns: len(diagnosis.Columns()),
		},
		Counts: Counts{
			Diagnoses: DiagnosisCounts{
				Predicted: categoryCounts(predicted),
				True:      categoryCounts(truth),
			},
			Flags: flagBreakdowns(flagNames, flags, truth),
		},
		Performance: performance(predicted, truth),
	}
	return rep, nil
}

func categoryCounts(vectors []diagnosis.Vector) map[string]int {
	counts := make(map[string]int, len(diagnosis.Columns()))
	for _, c := range diagnosis.Columns() {
		counts[string(c)] = 0
	}
	for _, v := range vectors {
		for _, c := range diagnosis.Columns() {
			if v.On(c) {
				counts[string(c)]++
			}
		}
	}
	return counts
}

// flagBreakdowns counts, per flag column and per true cohort, the
// negative / positive / undefined values in that column.
func flagBreakdowns(names []string, flags [][]screening.Value, truth []diagnosis.Vector) []FlagBreakdown {
	out := make([]FlagBreakdown, len(names))
	for col, name := range names {
		byCohort := make(map[string]ValueCounts, len(cohorts))
		for _, cohort := range cohorts {
			var vc ValueCounts
			for row := range flags {
				if !truth[row].On(cohort) {
					continue
				}
				switch flags[row][col] {
				case screening.Yes:
					vc.Yes++
				case screening.No:
					vc.No++
				default:
					vc.Undefined++
				}
			}
			byCohort[string(cohort)] = vc
		}
		out[col] = FlagBreakdown{Flag: name, Cohorts: byCohort}
	}
	return out
}

// performance scores the epilepsy bit over rows with a decisive
// prediction. Balanced accuracy averages recall over the classes
// actually present in the true labels.
func performance(predicted, truth []diagnosis.Vector) Performance {
	var correct, decisive int
	var posTotal, posCorrect, negTotal, negCorrect int

	for i := range predicted {
		if predicted[i].Indeterminate {
			continue
		}
		decisive++
		match := predicted[i].Epileptic == truth[i].Epileptic
		if match {
			correct++
		}
		if truth[i].Epileptic {
			posTotal++
			if match {
				posCorrect++
			}
		} else {
			negTotal++
			if match {
				negCorrect++
			}
		}
	}

	perf := Performance{
		Accuracy: Accuracy{Correct: correct, Decisive: decisive},
	}
	if decisive > 0 {
		perf.Accuracy.Fraction = float64(correct) / float64(decisive)
	}

	var recallSum float64
	var classes int
	if posTotal > 0 {
		recallSum += float64(posCorrect) / float64(posTotal)
		classes++
	}
	if negTotal > 0 {
		recallSum += float64(negCorrect) / float64(negTotal)
		classes++
	}
	if classes > 0 {
		perf.BalancedAccuracy = recallSum / float64(classes)
	}
	return perf
}
