package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/faresFatooh/media-platform/internal/model"
)

type StyleRepository struct {
	db *sqlx.DB
}

func NewStyleRepository(db *sqlx.DB) *StyleRepository {
	return &StyleRepository{db: db}
}

func (r *StyleRepository) Create(ctx context.Context, example *model.StyleExample) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO style_example(owner_id, before_text, after_text)
		VALUES($1, $2, $3)
		RETURNING id, created_at
	`, example.OwnerID, example.BeforeText, example.AfterText).
		Scan(&example.ID, &example.CreatedAt)
}

func (r *StyleRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.StyleExample, error) {
	var examples []model.StyleExample
	err := r.db.SelectContext(ctx, &examples, `
		SELECT id, owner_id, before_text, after_text, created_at
		FROM style_example
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return examples, nil
}

func (r *StyleRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM style_example WHERE owner_id = $1
	`, ownerID)
	return total, err
}

// ListRecentByOwner returns the newest examples first, capped at limit.
// Used to bound few-shot prompt size.
func (r *StyleRepository) ListRecentByOwner(ctx context.Context, ownerID int64, limit int) ([]model.StyleExample, error) {
	var examples []model.StyleExample
	err := r.db.SelectContext(ctx, &examples, `
		SELECT id, owner_id, before_text, after_text, created_at
		FROM style_example
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return examples, nil
}

func (r *StyleRepository) GetByID(ctx context.Context, ownerID, id int64) (*model.StyleExample, error) {
	var example model.StyleExample
	err := r.db.GetContext(ctx, &example, `
		SELECT id, owner_id, before_text, after_text, created_at
		FROM style_example
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &example, nil
}

func (r *StyleRepository) Update(ctx context.Context, ownerID, id int64, beforeText, afterText string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE style_example SET before_text = $1, after_text = $2
		WHERE id = $3 AND owner_id = $4
	`, beforeText, afterText, id, ownerID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *StyleRepository) DeleteByID(ctx context.Context, ownerID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM style_example WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
