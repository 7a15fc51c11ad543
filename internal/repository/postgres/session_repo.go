package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avolkovs/puzzletrack/internal/errs"
	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// SessionRepo implements SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

const sessionColumns = `id, puzzle_template_id, user_id, status, score, time_taken_seconds, started_at, completed_at`

// Create inserts a new in-progress session row.
func (r *SessionRepo) Create(ctx context.Context, s *model.PuzzleSession) error {
	const q = `
INSERT INTO puzzle_sessions (id, puzzle_template_id, user_id, status, started_at)
VALUES ($1,$2,$3,$4,$5)`
	_, err := r.db.Pool.Exec(ctx, q, s.ID, s.PuzzleTemplateID, s.UserID, s.Status, s.StartedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// GetOwned returns a session by id scoped to its owner.
func (r *SessionRepo) GetOwned(ctx context.Context, userID uuid.UUID, id string) (*model.PuzzleSession, error) {
	const q = `
SELECT ` + sessionColumns + `
FROM puzzle_sessions WHERE id=$1 AND user_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, id, userID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Finish writes the terminal status and completion data, scoped to the
// owner. Re-finishing an already finished session is an allowed overwrite.
func (r *SessionRepo) Finish(ctx context.Context, userID uuid.UUID, res model.SessionResult, completedAt time.Time) error {
	const q = `
UPDATE puzzle_sessions
SET status=$3, score=$4, time_taken_seconds=$5, completed_at=$6
WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, res.SessionID, userID, res.Status, res.Score, res.TimeTakenSeconds, completedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListOwned returns the user's sessions matching the filter, newest first.
// Filter conditions are AND-combined with the ownership predicate.
func (r *SessionRepo) ListOwned(ctx context.Context, userID uuid.UUID, f model.SessionFilter, limit, offset int) ([]model.PuzzleSession, error) {
	scope := eq("user_id", userID)
	if f.PuzzleTemplateID != "" {
		scope = allOf(scope, eq("puzzle_template_id", f.PuzzleTemplateID))
	}
	if f.Status != "" {
		scope = allOf(scope, eq("status", f.Status))
	}
	where, args := scope.render(1)

	q := fmt.Sprintf(`
SELECT `+sessionColumns+`
FROM puzzle_sessions
WHERE `+where+`
ORDER BY started_at DESC, id
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PuzzleSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func scanSession(row pgx.Row) (*model.PuzzleSession, error) {
	var s model.PuzzleSession
	if err := row.Scan(&s.ID, &s.PuzzleTemplateID, &s.UserID, &s.Status,
		&s.Score, &s.TimeTakenSeconds, &s.StartedAt, &s.CompletedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
