package usecase

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/user"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

type userUseCase struct {
	repo   user.Repository
	ids    idgen.Generator
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, ids idgen.Generator, log logger.ZapLogger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		ids:    ids,
		logger: log,
	}
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return uc.repo.List(ctx)
}

// UpsertUser stores the PIN as given. It is a till lock, not a credential.
func (uc *userUseCase) UpsertUser(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == 0 {
		u.ID = uc.ids.Next()
	}
	if err := uc.repo.Upsert(ctx, u); err != nil {
		uc.logger.Error("failed to upsert user", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete user", zap.Int64("user_id", id), zap.Error(err))
		return err
	}
	return nil
}
