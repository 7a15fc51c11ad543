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

// SessionService defines play-session and attempt operations.
type SessionService interface {
	// Start creates an in-progress session against a visible template.
	Start(ctx context.Context, userID uuid.UUID, puzzleTemplateID string) (*model.PuzzleSession, error)
	// Complete writes a terminal status and completion data for an owned session.
	Complete(ctx context.Context, userID uuid.UUID, res model.SessionResult) error
	// RecordAttempt stores one guess against an owned session and returns the attempt id.
	RecordAttempt(ctx context.Context, userID uuid.UUID, d model.AttemptDraft) (string, error)
	// List returns the caller's sessions matching the filter for one page.
	List(ctx context.Context, userID uuid.UUID, f model.SessionFilter, page model.Page) ([]model.PuzzleSession, error)
}

type SessionServiceImpl struct {
	sessions  repository.SessionRepository
	attempts  repository.AttemptRepository
	templates repository.TemplateRepository
	now       func() time.Time
}

// NewSessionService constructs SessionService with its repositories.
func NewSessionService(sessions repository.SessionRepository, attempts repository.AttemptRepository, templates repository.TemplateRepository) *SessionServiceImpl {
	return &SessionServiceImpl{sessions: sessions, attempts: attempts, templates: templates, now: time.Now}
}

// Start requires the template to be caller-owned or system-owned. Both a
// missing template and someone else's private template read as not found,
// so existence of other users' templates does not leak.
func (s *SessionServiceImpl) Start(ctx context.Context, userID uuid.UUID, puzzleTemplateID string) (*model.PuzzleSession, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	if puzzleTemplateID == "" {
		return nil, fmt.Errorf("%w: puzzleTemplateId is required", errs.ErrInvalidInput)
	}
	t, err := s.templates.GetByID(ctx, puzzleTemplateID)
	if err != nil {
		return nil, err
	}
	if !t.IsSystem && (t.UserID == nil || *t.UserID != userID) {
		return nil, fmt.Errorf("template not visible: %w", errs.ErrNotFound)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	sess := &model.PuzzleSession{
		ID:               id.String(),
		PuzzleTemplateID: puzzleTemplateID,
		UserID:           userID,
		Status:           model.StatusInProgress,
		StartedAt:        s.now(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Complete sets the requested terminal status and stamps completed_at,
// for the abandoned case too. Re-completing an already finished session
// is an allowed overwrite.
func (s *SessionServiceImpl) Complete(ctx context.Context, userID uuid.UUID, res model.SessionResult) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	if res.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", errs.ErrInvalidInput)
	}
	if !res.Status.Terminal() {
		return fmt.Errorf("%w: status must be completed or abandoned", errs.ErrInvalidInput)
	}
	if res.TimeTakenSeconds != nil && *res.TimeTakenSeconds <= 0 {
		return fmt.Errorf("%w: timeTakenSeconds must be positive", errs.ErrInvalidInput)
	}
	if _, err := s.sessions.GetOwned(ctx, userID, res.SessionID); err != nil {
		return err
	}
	return s.sessions.Finish(ctx, userID, res, s.now())
}

// RecordAttempt stores an attempt against an owned session. The session
// status is not checked, so attempts can land on finished sessions, and
// attemptIndex uniqueness is the caller's responsibility.
func (s *SessionServiceImpl) RecordAttempt(ctx context.Context, userID uuid.UUID, d model.AttemptDraft) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	if d.SessionID == "" {
		return "", fmt.Errorf("%w: sessionId is required", errs.ErrInvalidInput)
	}
	if d.AttemptIndex <= 0 {
		return "", fmt.Errorf("%w: attemptIndex must be positive", errs.ErrInvalidInput)
	}
	if _, err := s.sessions.GetOwned(ctx, userID, d.SessionID); err != nil {
		return "", err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	a := &model.PuzzleAttempt{
		ID:              id.String(),
		SessionID:       d.SessionID,
		AttemptIndex:    d.AttemptIndex,
		AttemptDataJSON: d.AttemptDataJSON,
		IsCorrect:       d.IsCorrect,
		CreatedAt:       s.now(),
	}
	if err := s.attempts.Create(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// List validates the page bounds and delegates to the repository. Filters
// are AND-combined and always scoped to the caller.
func (s *SessionServiceImpl) List(ctx context.Context, userID uuid.UUID, f model.SessionFilter, page model.Page) ([]model.PuzzleSession, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrUnauthorized)
	}
	if page.Number < 1 || page.Size < 1 || page.Size > 100 {
		return nil, fmt.Errorf("%w: bad page bounds", errs.ErrInvalidInput)
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidInput, f.Status)
	}
	return s.sessions.ListOwned(ctx, userID, f, page.Size, page.Offset())
}
