package usecase

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/product"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	ids    idgen.Generator
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, ids idgen.Generator, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		ids:    ids,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.List(ctx)
}

// UpsertProduct assigns an id when the caller sent none.
func (uc *productUseCase) UpsertProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if p.ID == 0 {
		p.ID = uc.ids.Next()
	}

	if err := uc.repo.Upsert(ctx, p); err != nil {
		uc.logger.Error("failed to upsert product", zap.Int64("product_id", p.ID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}
	return nil
}
