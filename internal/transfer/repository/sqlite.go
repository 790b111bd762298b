package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/jmoiron/sqlx"
)

// clearOrder deletes children before parents. The license table is not
// business data and is left alone.
var clearOrder = []string{"order_items", "orders", "products", "categories", "tables", "users"}

type SQLiteRepository struct {
	Store *store.Store
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{Store: s}
}

func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	return r.Store.Tx(ctx, "clear all data", func(tx *sqlx.Tx) error {
		for _, table := range clearOrder {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}
