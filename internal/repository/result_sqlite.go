package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type sqliteResult struct {
	db *sql.DB
}

// NewSQLiteResultRepository - expects the results table created by storage.Storage.Init.
func NewSQLiteResultRepository(db *sql.DB) ResultRepository {
	return &sqliteResult{
		db: db,
	}
}

func (that *sqliteResult) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT INTO results (id, width, rules, outcome, moves, finished_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.db.ExecContext(ctx, query,
		result.ID,
		result.Width,
		result.Rules,
		result.Outcome.String(),
		result.Moves,
		result.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *sqliteResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	query := `SELECT id, width, rules, outcome, moves, finished_at FROM results WHERE id = ?`

	var (
		result     entity.Result
		outcome    string
		finishedAt int64
	)

	err := that.db.QueryRowContext(ctx, query, id).
		Scan(&result.ID, &result.Width, &result.Rules, &outcome, &result.Moves, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by id: %w", err)
	}

	if result.Outcome, err = entity.ParseOutcome(outcome); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to parse outcome: %w", err)
	}

	result.FinishedAt = time.UnixMilli(finishedAt).UTC()

	return &result, nil
}

func (that *sqliteResult) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	query := `SELECT outcome, COUNT(*) FROM results GROUP BY outcome`

	rows, err := that.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scoreboard: %w", err)
	}
	defer rows.Close()

	scoreboard := &entity.Scoreboard{}
	for rows.Next() {
		var (
			outcome string
			count   int
		)

		if err = rows.Scan(&outcome, &count); err != nil {
			return nil, fmt.Errorf("failed to scan scoreboard row: %w", err)
		}

		parsed, err := entity.ParseOutcome(outcome)
		if err != nil {
			return nil, fmt.Errorf("failed to parse outcome: %w", err)
		}

		scoreboard.Add(parsed, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scoreboard: %w", err)
	}

	return scoreboard, nil
}
