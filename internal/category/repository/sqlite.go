package repository

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	Store *store.Store
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{Store: s}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	err := r.Store.Do(ctx, "list categories", func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &categories, `SELECT id, name, description, icon FROM categories`)
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, c *model.Category) error {
	return r.Store.Do(ctx, "upsert category", func(q sqlx.ExtContext) error {
		query := `
			INSERT OR REPLACE INTO categories (id, name, description, icon)
			VALUES (:id, :name, :description, :icon)
		`
		_, err := sqlx.NamedExecContext(ctx, q, query, c)
		return err
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	// Products keep their free-text category label.
	return r.Store.Do(ctx, "delete category", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
		return err
	})
}
