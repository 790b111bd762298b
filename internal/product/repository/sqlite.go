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

func (r *SQLiteRepository) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.Store.Do(ctx, "list products", func(q sqlx.ExtContext) error {
		query := `
			SELECT id, name, price, category, brand, icon_type, selected_icon, uploaded_image, stock
			FROM products
		`
		return sqlx.SelectContext(ctx, q, &products, query)
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, p *model.Product) error {
	return r.Store.Do(ctx, "upsert product", func(q sqlx.ExtContext) error {
		query := `
			INSERT OR REPLACE INTO products (id, name, price, category, brand, icon_type, selected_icon, uploaded_image, stock)
			VALUES (:id, :name, :price, :category, :brand, :icon_type, :selected_icon, :uploaded_image, :stock)
		`
		_, err := sqlx.NamedExecContext(ctx, q, query, p)
		return err
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	return r.Store.Do(ctx, "delete product", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
		return err
	})
}
