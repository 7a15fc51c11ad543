// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/gofrs/uuid/v5"
)

// TemplateRepository provides access to puzzle templates.
type TemplateRepository interface {
	// Create inserts a new template row.
	Create(ctx context.Context, t *model.PuzzleTemplate) error

	// GetByID loads a template by id regardless of ownership.
	GetByID(ctx context.Context, id string) (*model.PuzzleTemplate, error)

	// Update applies the non-empty fields of the patch and refreshes
	// updated_at. Returns ErrNotFound if the row is gone.
	Update(ctx context.Context, p model.TemplatePatch) error

	// ListVisible returns templates owned by the user, unioned with system
	// templates when includeSystem is set.
	ListVisible(ctx context.Context, userID uuid.UUID, includeSystem bool) ([]model.PuzzleTemplate, error)
}
