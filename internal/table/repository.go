package table

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.Table, error)
	Upsert(ctx context.Context, t *model.Table) error
	Delete(ctx context.Context, id int64) error
}
