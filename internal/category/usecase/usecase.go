package usecase

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/category"
	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	ids    idgen.Generator
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, ids idgen.Generator, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		ids:    ids,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.List(ctx)
}

func (uc *categoryUseCase) UpsertCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	if c.ID == 0 {
		c.ID = uc.ids.Next()
	}

	err := uc.repo.Upsert(ctx, c)
	if err != nil {
		uc.logger.Error("failed to upsert category", zap.Int64("category_id", c.ID), zap.Error(err))
		return nil, err
	}

	return c, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
