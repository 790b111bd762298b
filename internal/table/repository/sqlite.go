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

func (r *SQLiteRepository) List(ctx context.Context) ([]model.Table, error) {
	tables := []model.Table{}
	err := r.Store.Do(ctx, "list tables", func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &tables, `SELECT id, name, available, current_order_id FROM tables`)
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// Upsert stores current_order_id as given; it is not checked against orders.
func (r *SQLiteRepository) Upsert(ctx context.Context, t *model.Table) error {
	return r.Store.Do(ctx, "upsert table", func(q sqlx.ExtContext) error {
		query := `
			INSERT OR REPLACE INTO tables (id, name, available, current_order_id)
			VALUES (:id, :name, :available, :current_order_id)
		`
		_, err := sqlx.NamedExecContext(ctx, q, query, t)
		return err
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	return r.Store.Do(ctx, "delete table", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx, `DELETE FROM tables WHERE id = ?`, id)
		return err
	})
}
