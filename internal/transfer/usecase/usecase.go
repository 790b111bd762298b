package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-desktop/internal/category"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/order"
	"github.com/fekuna/omnipos-desktop/internal/product"
	"github.com/fekuna/omnipos-desktop/internal/table"
	"github.com/fekuna/omnipos-desktop/internal/transfer"
	"github.com/fekuna/omnipos-desktop/internal/user"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

// Repositories are the per-entity stores a snapshot is read from and
// written back to.
type Repositories struct {
	Products   product.Repository
	Categories category.Repository
	Orders     order.Repository
	Tables     table.Repository
	Users      user.Repository
}

type transferUseCase struct {
	repo   transfer.Repository
	repos  Repositories
	logger logger.ZapLogger
}

func NewTransferUseCase(repo transfer.Repository, repos Repositories, log logger.ZapLogger) transfer.UseCase {
	return &transferUseCase{
		repo:   repo,
		repos:  repos,
		logger: log,
	}
}

func (uc *transferUseCase) Export(ctx context.Context) (*model.Snapshot, error) {
	products, err := uc.repos.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}
	categories, err := uc.repos.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export categories: %w", err)
	}
	orders, err := uc.repos.Orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export orders: %w", err)
	}
	tables, err := uc.repos.Tables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export tables: %w", err)
	}
	users, err := uc.repos.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}

	uc.logger.Info("Data exported",
		zap.Int("products", len(products)),
		zap.Int("categories", len(categories)),
		zap.Int("orders", len(orders)),
		zap.Int("tables", len(tables)),
		zap.Int("users", len(users)),
	)

	return &model.Snapshot{
		Products:   products,
		Categories: categories,
		Orders:     orders,
		Tables:     tables,
		Users:      users,
	}, nil
}

func (uc *transferUseCase) Import(ctx context.Context, s *model.Snapshot) error {
	if s == nil {
		return transfer.ErrNilSnapshot
	}
	for i := range s.Products {
		if err := uc.repos.Products.Upsert(ctx, &s.Products[i]); err != nil {
			return uc.importFailed("product", s.Products[i].ID, err)
		}
	}
	for i := range s.Categories {
		if err := uc.repos.Categories.Upsert(ctx, &s.Categories[i]); err != nil {
			return uc.importFailed("category", s.Categories[i].ID, err)
		}
	}
	for i := range s.Orders {
		if err := uc.repos.Orders.Upsert(ctx, &s.Orders[i]); err != nil {
			return uc.importFailed("order", s.Orders[i].ID, err)
		}
	}
	if s.Tables != nil {
		for i := range s.Tables {
			if err := uc.repos.Tables.Upsert(ctx, &s.Tables[i]); err != nil {
				return uc.importFailed("table", s.Tables[i].ID, err)
			}
		}
	}
	if s.Users != nil {
		for i := range s.Users {
			if err := uc.repos.Users.Upsert(ctx, &s.Users[i]); err != nil {
				return uc.importFailed("user", s.Users[i].ID, err)
			}
		}
	}

	uc.logger.Info("Data imported",
		zap.Int("products", len(s.Products)),
		zap.Int("categories", len(s.Categories)),
		zap.Int("orders", len(s.Orders)),
		zap.Bool("tables", s.Tables != nil),
		zap.Bool("users", s.Users != nil),
	)
	return nil
}

func (uc *transferUseCase) importFailed(kind string, id int64, err error) error {
	uc.logger.Error("import stopped", zap.String("kind", kind), zap.Int64("id", id), zap.Error(err))
	return fmt.Errorf("failed to import %s %d: %w", kind, id, err)
}

func (uc *transferUseCase) ClearAll(ctx context.Context) error {
	if err := uc.repo.ClearAll(ctx); err != nil {
		uc.logger.Error("failed to clear data", zap.Error(err))
		return err
	}
	uc.logger.Warn("All business data cleared")
	return nil
}
