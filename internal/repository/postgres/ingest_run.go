package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/gourmet-server/internal/model"
)

var _ model.IngestRunStore = (*IngestRunRepository)(nil)

type IngestRunRepository struct {
	db *Connection
}

func NewIngestRunRepository(db *Connection) *IngestRunRepository {
	return &IngestRunRepository{
		db: db,
	}
}

func (r *IngestRunRepository) Start(ctx context.Context, run model.IngestRun) error {
	const query = `INSERT INTO ingest_runs (id, user_id, state, started_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, run.ID, run.UserID, string(run.State), run.StartedAt); err != nil {
		return fmt.Errorf("failed to start ingest run: %w", err)
	}
	return nil
}

func (r *IngestRunRepository) Finish(ctx context.Context, run model.IngestRun) error {
	const query = `
		UPDATE ingest_runs
		SET state = $2, outcome = $3, accepted = $4, error = $5, finished_at = $6
		WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query,
		run.ID, string(run.State), string(run.Outcome), run.Accepted, run.Error, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to finish ingest run: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *IngestRunRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.IngestRun, error) {
	query := `
		SELECT id, user_id, state, outcome, accepted, error, started_at, finished_at
		FROM ingest_runs
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingest runs: %w", err)
	}
	defer rows.Close()

	var runs []model.IngestRun
	for rows.Next() {
		var run model.IngestRun
		if err := rows.Scan(
			&run.ID, &run.UserID, &run.State, &run.Outcome, &run.Accepted,
			&run.Error, &run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
