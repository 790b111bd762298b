package order

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type UseCase interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpsertOrder(ctx context.Context, o *model.Order) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
