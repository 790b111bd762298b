package usecase

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/table"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

type tableUseCase struct {
	repo   table.Repository
	ids    idgen.Generator
	logger logger.ZapLogger
}

func NewTableUseCase(repo table.Repository, ids idgen.Generator, log logger.ZapLogger) table.UseCase {
	return &tableUseCase{
		repo:   repo,
		ids:    ids,
		logger: log,
	}
}

func (uc *tableUseCase) ListTables(ctx context.Context) ([]model.Table, error) {
	return uc.repo.List(ctx)
}

func (uc *tableUseCase) UpsertTable(ctx context.Context, t *model.Table) (*model.Table, error) {
	if t.ID == 0 {
		t.ID = uc.ids.Next()
	}
	if err := uc.repo.Upsert(ctx, t); err != nil {
		uc.logger.Error("failed to upsert table", zap.Int64("table_id", t.ID), zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (uc *tableUseCase) DeleteTable(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
