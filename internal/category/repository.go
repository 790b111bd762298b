package category

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.Category, error)
	Upsert(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int64) error
}
