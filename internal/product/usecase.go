package product

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type UseCase interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpsertProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
