package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/faresFatooh/media-platform/internal/model"
)

type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO task(owner_id, application_id, status, input_text, output_text)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, task.OwnerID, task.ApplicationID, task.Status, task.InputText, task.OutputText).
		Scan(&task.ID, &task.CreatedAt)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.SelectContext(ctx, &tasks, `
		SELECT id, owner_id, application_id, status, input_text, output_text, created_at
		FROM task
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM task WHERE owner_id = $1
	`, ownerID)
	return total, err
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.GetContext(ctx, &task, `
		SELECT id, owner_id, application_id, status, input_text, output_text, created_at
		FROM task
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID, id int64, status, outputText string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE task SET status = $1, output_text = $2
		WHERE id = $3 AND owner_id = $4
	`, status, outputText, id, ownerID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *TaskRepository) DeleteByID(ctx context.Context, ownerID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM task WHERE id = $1 AND owner_id = $2
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
