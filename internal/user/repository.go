package user

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.User, error)
	Upsert(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}
