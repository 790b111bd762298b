package usecase

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/order"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo   order.Repository
	ids    idgen.Generator
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, ids idgen.Generator, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		ids:    ids,
		logger: log,
	}
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// UpsertOrder stores the header and items as given. Totals and item counts
// are the caller's figures and are not recomputed.
func (uc *orderUseCase) UpsertOrder(ctx context.Context, o *model.Order) (*model.Order, error) {
	if o.ID == 0 {
		o.ID = uc.ids.Next()
	}

	if err := uc.repo.Upsert(ctx, o); err != nil {
		uc.logger.Error("failed to upsert order",
			zap.Int64("order_id", o.ID),
			zap.Int("items", len(o.Items)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Debug("order saved", zap.Int64("order_id", o.ID), zap.String("status", o.Status))
	return o, nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete order", zap.Int64("order_id", id), zap.Error(err))
		return err
	}
	return nil
}
