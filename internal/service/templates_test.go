package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/avolkovs/puzzletrack/internal/errs"
	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/avolkovs/puzzletrack/internal/repository"
)

type fakeTemplateRepo struct {
	createIn  *model.PuzzleTemplate
	createErr error

	getInID string
	getOut  *model.PuzzleTemplate
	getErr  error

	updateIn  model.TemplatePatch
	updateErr error

	listInUser    uuid.UUID
	listInInclude bool
	listOut       []model.PuzzleTemplate
	listErr       error
}

var _ repository.TemplateRepository = (*fakeTemplateRepo)(nil)

func (f *fakeTemplateRepo) Create(_ context.Context, t *model.PuzzleTemplate) error {
	f.createIn = t
	return f.createErr
}
func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*model.PuzzleTemplate, error) {
	f.getInID = id
	return f.getOut, f.getErr
}
func (f *fakeTemplateRepo) Update(_ context.Context, p model.TemplatePatch) error {
	f.updateIn = p
	return f.updateErr
}
func (f *fakeTemplateRepo) ListVisible(_ context.Context, userID uuid.UUID, includeSystem bool) ([]model.PuzzleTemplate, error) {
	f.listInUser, f.listInInclude = userID, includeSystem
	return append([]model.PuzzleTemplate(nil), f.listOut...), f.listErr
}

func TestTemplateService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeTemplateRepo{}
	s := NewTemplateService(repo)
	user := uuid.Must(uuid.NewV4())

	if _, err := s.Create(ctx, uuid.Nil, model.TemplateDraft{Name: "x"}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized on empty userID, got %v", err)
	}
	if _, err := s.Create(ctx, user, model.TemplateDraft{}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput on empty name, got %v", err)
	}
	if repo.createIn != nil {
		t.Fatalf("repo should not be called on invalid input")
	}
}

func TestTemplateService_Create_StampsOwnershipAndTimes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeTemplateRepo{}
	s := NewTemplateService(repo)
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	user := uuid.Must(uuid.NewV4())
	id, err := s.Create(ctx, user, model.TemplateDraft{Name: "Test", PuzzleType: "sudoku"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" || repo.createIn == nil || repo.createIn.ID != id {
		t.Fatalf("id not assigned/forwarded: id=%q in=%+v", id, repo.createIn)
	}
	got := repo.createIn
	if got.UserID == nil || *got.UserID != user {
		t.Fatalf("owner not stamped: %+v", got.UserID)
	}
	// Callers can never create system templates.
	if got.IsSystem {
		t.Fatalf("created template must not be system")
	}
	if !got.CreatedAt.Equal(fixed) || !got.UpdatedAt.Equal(fixed) {
		t.Fatalf("timestamps not stamped: %+v", got)
	}
	if got.Name != "Test" || got.PuzzleType != "sudoku" {
		t.Fatalf("draft fields not forwarded: %+v", got)
	}
}

func TestTemplateService_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo := &fakeTemplateRepo{getErr: errs.ErrNotFound}
	s := NewTemplateService(repo)
	user := uuid.Must(uuid.NewV4())

	err := s.Update(context.Background(), user, model.TemplatePatch{ID: "missing", Name: "x"})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTemplateService_Update_SystemTemplateForbidden(t *testing.T) {
	t.Parallel()
	user := uuid.Must(uuid.NewV4())
	// Even a nominal owner field does not make a system template mutable.
	repo := &fakeTemplateRepo{getOut: &model.PuzzleTemplate{ID: "system-puzzle-sample", UserID: &user, IsSystem: true}}
	s := NewTemplateService(repo)

	err := s.Update(context.Background(), user, model.TemplatePatch{ID: "system-puzzle-sample", Name: "Hack"})
	if !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if repo.updateIn.ID != "" {
		t.Fatalf("update must not reach the repository")
	}
}

func TestTemplateService_Update_OtherOwnerForbidden(t *testing.T) {
	t.Parallel()
	owner := uuid.Must(uuid.NewV4())
	caller := uuid.Must(uuid.NewV4())
	repo := &fakeTemplateRepo{getOut: &model.PuzzleTemplate{ID: "t1", UserID: &owner}}
	s := NewTemplateService(repo)

	err := s.Update(context.Background(), caller, model.TemplatePatch{ID: "t1", Name: "Hack"})
	if !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestTemplateService_Update_OwnerOK(t *testing.T) {
	t.Parallel()
	owner := uuid.Must(uuid.NewV4())
	repo := &fakeTemplateRepo{getOut: &model.PuzzleTemplate{ID: "t1", UserID: &owner}}
	s := NewTemplateService(repo)

	patch := model.TemplatePatch{ID: "t1", Difficulty: "hard"}
	if err := s.Update(context.Background(), owner, patch); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.getInID != "t1" || repo.updateIn != patch {
		t.Fatalf("repo args mismatch: get=%q update=%+v", repo.getInID, repo.updateIn)
	}
}

func TestTemplateService_List_Delegates(t *testing.T) {
	t.Parallel()
	user := uuid.Must(uuid.NewV4())
	repo := &fakeTemplateRepo{listOut: []model.PuzzleTemplate{{ID: "a"}, {ID: "b"}}}
	s := NewTemplateService(repo)

	if _, err := s.List(context.Background(), uuid.Nil, true); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}

	out, err := s.List(context.Background(), user, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || repo.listInUser != user || !repo.listInInclude {
		t.Fatalf("delegate mismatch: out=%d repo=%+v", len(out), repo)
	}
}
