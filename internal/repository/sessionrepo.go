package repository

import (
	"context"
	"time"

	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/gofrs/uuid/v5"
)

// SessionRepository provides access to puzzle sessions, always scoped to
// the owning user.
type SessionRepository interface {
	// Create inserts a new session row.
	Create(ctx context.Context, s *model.PuzzleSession) error

	// GetOwned loads a session by id for the given owner. Returns
	// ErrNotFound when the row is absent or owned by someone else.
	GetOwned(ctx context.Context, userID uuid.UUID, id string) (*model.PuzzleSession, error)

	// Finish writes the terminal status, score, time taken and completion
	// timestamp. Scoped to the owner; returns ErrNotFound otherwise.
	Finish(ctx context.Context, userID uuid.UUID, res model.SessionResult, completedAt time.Time) error

	// ListOwned returns the user's sessions matching the filter, newest
	// first, bounded by limit/offset.
	ListOwned(ctx context.Context, userID uuid.UUID, f model.SessionFilter, limit, offset int) ([]model.PuzzleSession, error)
}
