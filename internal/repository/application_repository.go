package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/faresFatooh/media-platform/internal/model"
)

// ApplicationRepository reads the application catalog. Applications are
// seeded out of band and never written through the API.
type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) List(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.SelectContext(ctx, &applications, `
		SELECT id, name, description, created_at
		FROM application
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	var application model.Application
	err := r.db.GetContext(ctx, &application, `
		SELECT id, name, description, created_at
		FROM application
		WHERE id = $1
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &application, nil
}
