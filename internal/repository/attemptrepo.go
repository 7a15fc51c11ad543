package repository

import (
	"context"

	"github.com/avolkovs/puzzletrack/internal/model"
)

// AttemptRepository records solve attempts. Attempts are append-only.
type AttemptRepository interface {
	// Create inserts a new attempt row.
	Create(ctx context.Context, a *model.PuzzleAttempt) error
}
