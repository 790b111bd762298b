package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/product/repository"
	"github.com/fekuna/omnipos-desktop/internal/store/storetest"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/shopspring/decimal"
)

func TestUpsertProductAssignsMissingID(t *testing.T) {
	uc := NewProductUseCase(repository.NewSQLiteRepository(storetest.New(t)), idgen.NewSequence(500), logger.NewNop())
	ctx := context.Background()

	p, err := uc.UpsertProduct(ctx, &model.Product{Name: "Mocha", Price: decimal.NewFromInt(4), Category: "Coffee"})
	if err != nil {
		t.Fatalf("UpsertProduct: %v", err)
	}
	if p.ID != 500 {
		t.Errorf("assigned id = %d, want 500", p.ID)
	}

	kept, err := uc.UpsertProduct(ctx, &model.Product{ID: 3, Name: "Tea", Price: decimal.NewFromInt(2), Category: "Tea"})
	if err != nil {
		t.Fatalf("UpsertProduct: %v", err)
	}
	if kept.ID != 3 {
		t.Errorf("explicit id replaced: %d", kept.ID)
	}

	products, err := uc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("got %d products, want 2", len(products))
	}
}
