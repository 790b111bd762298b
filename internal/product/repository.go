package product

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.Product, error)
	// Upsert inserts the product or overwrites every column of the row
	// with the same id.
	Upsert(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}
