package order

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

// Repository persists an Order together with its items. Items are never
// written on their own.
type Repository interface {
	List(ctx context.Context) ([]model.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	Upsert(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id int64) error
}
