package category

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpsertCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
