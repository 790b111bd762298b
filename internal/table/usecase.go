package table

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type UseCase interface {
	ListTables(ctx context.Context) ([]model.Table, error)
	UpsertTable(ctx context.Context, t *model.Table) (*model.Table, error)
	DeleteTable(ctx context.Context, id int64) error
}
