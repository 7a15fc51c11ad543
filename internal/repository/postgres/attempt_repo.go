package postgres

import (
	"context"

	"github.com/avolkovs/puzzletrack/internal/errs"
	"github.com/avolkovs/puzzletrack/internal/model"
)

// AttemptRepo implements AttemptRepository using PostgreSQL.
type AttemptRepo struct{ db *DB }

// NewAttemptRepo constructs an attempt repository.
func NewAttemptRepo(db *DB) *AttemptRepo { return &AttemptRepo{db: db} }

// Create inserts an attempt row. A dangling session reference surfaces as
// ErrNotFound via the foreign key.
func (r *AttemptRepo) Create(ctx context.Context, a *model.PuzzleAttempt) error {
	const q = `
INSERT INTO puzzle_attempts (id, session_id, attempt_index, attempt_data_json, is_correct, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.Pool.Exec(ctx, q, a.ID, a.SessionID, a.AttemptIndex, a.AttemptDataJSON, a.IsCorrect, a.CreatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}
