// Package service contains application services implementing the puzzle actions.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/avolkovs/puzzletrack/internal/errs"
	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/avolkovs/puzzletrack/internal/repository"
)

// TemplateService defines catalog operations over puzzle templates. The
// acting user is always an explicit parameter; no identity is read from
// ambient state.
type TemplateService interface {
	// Create stores a new user-owned template and returns its id.
	Create(ctx context.Context, userID uuid.UUID, d model.TemplateDraft) (string, error)
	// Update modifies an owned template. System templates are immutable.
	Update(ctx context.Context, userID uuid.UUID, p model.TemplatePatch) error
	// List returns the caller's templates, plus system ones when includeSystem is set.
	List(ctx context.Context, userID uuid.UUID, includeSystem bool) ([]model.PuzzleTemplate, error)
}

type TemplateServiceImpl struct {
	templates repository.TemplateRepository
	now       func() time.Time
}

// NewTemplateService constructs TemplateService.
func NewTemplateService(templates repository.TemplateRepository) *TemplateServiceImpl {
	return &TemplateServiceImpl{templates: templates, now: time.Now}
}

// Create validates the draft and inserts a template owned by the caller.
// Callers can never create system templates.
func (s *TemplateServiceImpl) Create(ctx context.Context, userID uuid.UUID, d model.TemplateDraft) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	if d.Name == "" {
		return "", fmt.Errorf("%w: name is required", errs.ErrInvalidInput)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	owner := userID
	now := s.now()
	t := &model.PuzzleTemplate{
		ID:           id.String(),
		UserID:       &owner,
		Name:         d.Name,
		PuzzleType:   d.PuzzleType,
		Difficulty:   d.Difficulty,
		Description:  d.Description,
		DataJSON:     d.DataJSON,
		SolutionJSON: d.SolutionJSON,
		IsSystem:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// Update fetches the template, checks ownership, and applies the patch.
// Empty patch fields are treated as "not provided" and skipped, so an
// empty string cannot clear a field. updated_at refreshes regardless.
func (s *TemplateServiceImpl) Update(ctx context.Context, userID uuid.UUID, p model.TemplatePatch) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	if p.ID == "" {
		return fmt.Errorf("%w: id is required", errs.ErrInvalidInput)
	}
	t, err := s.templates.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if t.IsSystem {
		return fmt.Errorf("system template is immutable: %w", errs.ErrForbidden)
	}
	if t.UserID == nil || *t.UserID != userID {
		return fmt.Errorf("template owned by another user: %w", errs.ErrForbidden)
	}
	return s.templates.Update(ctx, p)
}

// List returns visible templates for the caller.
func (s *TemplateServiceImpl) List(ctx context.Context, userID uuid.UUID, includeSystem bool) ([]model.PuzzleTemplate, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	return s.templates.ListVisible(ctx, userID, includeSystem)
}
