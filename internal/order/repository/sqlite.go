package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/jmoiron/sqlx"
)

const (
	selectOrdersQuery = `
		SELECT id, date, total, change, total_paid, item_count, table_number, payment_method, ticket_path, status
		FROM orders
	`
	selectItemsQuery = `
		SELECT product_id, name, price, quantity, category
		FROM order_items
		WHERE order_id = ?
		ORDER BY id ASC
	`
	// ON CONFLICT updates the row in place. INSERT OR REPLACE would delete it
	// first and fire the order_items cascade.
	upsertOrderQuery = `
		INSERT INTO orders (id, date, total, change, total_paid, item_count, table_number, payment_method, ticket_path, status)
		VALUES (:id, :date, :total, :change, :total_paid, :item_count, :table_number, :payment_method, :ticket_path, :status)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			total = excluded.total,
			change = excluded.change,
			total_paid = excluded.total_paid,
			item_count = excluded.item_count,
			table_number = excluded.table_number,
			payment_method = excluded.payment_method,
			ticket_path = excluded.ticket_path,
			status = excluded.status
	`
	insertItemQuery = `
		INSERT INTO order_items (order_id, product_id, name, price, quantity, category)
		VALUES (:order_id, :product_id, :name, :price, :quantity, :category)
	`
)

type itemRow struct {
	OrderID int64 `db:"order_id"`
	model.OrderItem
}

type SQLiteRepository struct {
	Store *store.Store
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{Store: s}
}

// List loads every order and then, one query per order, its items.
func (r *SQLiteRepository) List(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.Store.Do(ctx, "list orders", func(q sqlx.ExtContext) error {
		if err := sqlx.SelectContext(ctx, q, &orders, selectOrdersQuery); err != nil {
			return err
		}
		for i := range orders {
			items, err := selectItems(ctx, q, orders[i].ID)
			if err != nil {
				return fmt.Errorf("failed to load items of order %d: %w", orders[i].ID, err)
			}
			orders[i].Items = items
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQLiteRepository) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.Store.Do(ctx, "list order items", func(q sqlx.ExtContext) error {
		var err error
		items, err = selectItems(ctx, q, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func selectItems(ctx context.Context, q sqlx.QueryerContext, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	if err := sqlx.SelectContext(ctx, q, &items, selectItemsQuery, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert writes the header and replaces the item set in one transaction,
// so a failure leaves the previous order untouched.
func (r *SQLiteRepository) Upsert(ctx context.Context, o *model.Order) error {
	o.ApplyDefaults()

	return r.Store.Tx(ctx, "upsert order", func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, upsertOrderQuery, o); err != nil {
			return fmt.Errorf("failed to write order header: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
			return fmt.Errorf("failed to clear order items: %w", err)
		}
		for _, item := range o.Items {
			row := itemRow{OrderID: o.ID, OrderItem: item}
			if _, err := tx.NamedExecContext(ctx, insertItemQuery, row); err != nil {
				return fmt.Errorf("failed to insert order item: %w", err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	return r.Store.Tx(ctx, "delete order", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}
