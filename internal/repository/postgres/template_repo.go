package postgres

import (
	"context"
	"errors"

	"github.com/avolkovs/puzzletrack/internal/errs"
	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// TemplateRepo implements TemplateRepository using PostgreSQL.
type TemplateRepo struct{ db *DB }

// NewTemplateRepo constructs a template repository.
func NewTemplateRepo(db *DB) *TemplateRepo { return &TemplateRepo{db: db} }

const templateColumns = `id, user_id, name, puzzle_type, difficulty, description, data_json, solution_json, is_system, created_at, updated_at`

// Create inserts a new template row with caller-stamped timestamps.
func (r *TemplateRepo) Create(ctx context.Context, t *model.PuzzleTemplate) error {
	const q = `
INSERT INTO puzzle_templates (id, user_id, name, puzzle_type, difficulty, description, data_json, solution_json, is_system, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.db.Pool.Exec(ctx, q,
		t.ID, ownerArg(t.UserID), t.Name, t.PuzzleType, t.Difficulty, t.Description,
		t.DataJSON, t.SolutionJSON, t.IsSystem, t.CreatedAt, t.UpdatedAt)
	return err
}

// GetByID returns a template by id regardless of ownership.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*model.PuzzleTemplate, error) {
	const q = `
SELECT ` + templateColumns + `
FROM puzzle_templates WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update applies non-empty patch fields and refreshes updated_at. Empty
// patch fields are sent as NULL so COALESCE keeps the stored value.
func (r *TemplateRepo) Update(ctx context.Context, p model.TemplatePatch) error {
	const q = `
UPDATE puzzle_templates
SET name=COALESCE($2,name),
    puzzle_type=COALESCE($3,puzzle_type),
    difficulty=COALESCE($4,difficulty),
    description=COALESCE($5,description),
    data_json=COALESCE($6,data_json),
    solution_json=COALESCE($7,solution_json),
    updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, p.ID,
		nullIfEmpty(p.Name), nullIfEmpty(p.PuzzleType), nullIfEmpty(p.Difficulty),
		nullIfEmpty(p.Description), nullIfEmpty(p.DataJSON), nullIfEmpty(p.SolutionJSON))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListVisible returns the caller's templates, plus system templates when
// includeSystem is set. The two branches are OR-combined.
func (r *TemplateRepo) ListVisible(ctx context.Context, userID uuid.UUID, includeSystem bool) ([]model.PuzzleTemplate, error) {
	visible := eq("user_id", userID)
	if includeSystem {
		visible = anyOf(visible, eq("is_system", true))
	}
	where, args := visible.render(1)

	q := `
SELECT ` + templateColumns + `
FROM puzzle_templates
WHERE ` + where + `
ORDER BY created_at DESC, id`
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PuzzleTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func scanTemplate(row pgx.Row) (*model.PuzzleTemplate, error) {
	var (
		t     model.PuzzleTemplate
		owner uuid.NullUUID
	)
	if err := row.Scan(&t.ID, &owner, &t.Name, &t.PuzzleType, &t.Difficulty, &t.Description,
		&t.DataJSON, &t.SolutionJSON, &t.IsSystem, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if owner.Valid {
		u := owner.UUID
		t.UserID = &u
	}
	return &t, nil
}

// ownerArg converts an optional owner id into a nullable query argument.
func ownerArg(u *uuid.UUID) any {
	if u == nil {
		return nil
	}
	return *u
}

// nullIfEmpty maps an empty string to NULL for COALESCE-based updates.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
