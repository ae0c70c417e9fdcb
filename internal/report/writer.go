// Package report persists the pipeline outputs as flat JSON files.
// It runs strictly after the core completes; a failed run writes
// nothing.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpv/episcreen/internal/diagnosis"
	"github.com/mcpv/episcreen/internal/metrics"
	"github.com/mcpv/episcreen/internal/screening"
)

// Output file names within the output directory.
const (
	FlagMatrixFile = "flag_matrix.json"
	PredictedFile  = "predicted.json"
	TrueFile       = "true.json"
	MetricsFile    = "metrics.json"
)

// matrixDoc is the on-disk shape of a matrix: column names plus rows.
type matrixDoc struct {
	Columns []string `json:"columns"`
	Rows    any      `json:"rows"`
}

// Write persists the flag matrix (Undefined as null), both diagnosis
// matrices, and the metrics report under dir.
func Write(dir string, flagNames []string, flags [][]screening.Value, predicted, truth []diagnosis.Vector, rep *metrics.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]any{
		FlagMatrixFile: matrixDoc{Columns: flagNames, Rows: flagRows(flags)},
		PredictedFile:  matrixDoc{Columns: diagnosisColumns(), Rows: diagnosisRows(predicted)},
		TrueFile:       matrixDoc{Columns: diagnosisColumns(), Rows: diagnosisRows(truth)},
		MetricsFile:    rep,
	}
	for name, doc := range files {
		if err := writeJSON(filepath.Join(dir, name), doc); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// flagRows converts tri-state values to their serialized form:
// 1, 0, or null.
func flagRows(matrix [][]screening.Value) [][]*float64 {
	rows := make([][]*float64, len(matrix))
	for i, row := range matrix {
		out := make([]*float64, len(row))
		for j, v := range row {
			out[j] = v.Float()
		}
		rows[i] = out
	}
	return rows
}

func diagnosisRows(vectors []diagnosis.Vector) [][]int {
	rows := make([][]int, len(vectors))
	for i, v := range vectors {
		rows[i] = v.Flatten()
	}
	return rows
}

func diagnosisColumns() []string {
	cols := diagnosis.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}
