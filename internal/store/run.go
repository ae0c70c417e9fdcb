package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcpv/episcreen/internal/metrics"
)

// Run is one recorded scoring run.
type Run struct {
	ID               string
	CreatedAt        time.Time
	Patients         int
	Accuracy         float64
	BalancedAccuracy float64
	Metrics          json.RawMessage
}

// SaveRun records a completed run. A missing ID is assigned.
func (s *Store) SaveRun(ctx context.Context, rep *metrics.Report) (*Run, error) {
	metricsJSON, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal metrics: %w", err)
	}

	run := &Run{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		Patients:         rep.Summary.Patients,
		Accuracy:         rep.Performance.Accuracy.Fraction,
		BalancedAccuracy: rep.Performance.BalancedAccuracy,
		Metrics:          metricsJSON,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, patients, accuracy, balanced_accuracy, metrics)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Patients, run.Accuracy, run.BalancedAccuracy, string(run.Metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// ListRecent returns the most recent runs, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, patients, accuracy, balanced_accuracy, metrics
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		var raw string
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Patients, &run.Accuracy, &run.BalancedAccuracy, &raw); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Metrics = json.RawMessage(raw)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
