package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	catrepo "github.com/fekuna/omnipos-desktop/internal/category/repository"
	"github.com/fekuna/omnipos-desktop/internal/model"
	orderrepo "github.com/fekuna/omnipos-desktop/internal/order/repository"
	prodrepo "github.com/fekuna/omnipos-desktop/internal/product/repository"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/fekuna/omnipos-desktop/internal/store/storetest"
	tablerepo "github.com/fekuna/omnipos-desktop/internal/table/repository"
	"github.com/fekuna/omnipos-desktop/internal/transfer"
	"github.com/fekuna/omnipos-desktop/internal/transfer/repository"
	userrepo "github.com/fekuna/omnipos-desktop/internal/user/repository"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

func newUseCase(t *testing.T) (transfer.UseCase, *store.Store) {
	s := storetest.New(t)
	repos := Repositories{
		Products:   prodrepo.NewSQLiteRepository(s),
		Categories: catrepo.NewSQLiteRepository(s),
		Orders:     orderrepo.NewSQLiteRepository(s),
		Tables:     tablerepo.NewSQLiteRepository(s),
		Users:      userrepo.NewSQLiteRepository(s),
	}
	return NewTransferUseCase(repository.NewSQLiteRepository(s), repos, logger.NewNop()), s
}

func sampleSnapshot() *model.Snapshot {
	brand := "Roastery"
	desc := "Hot"
	cat := "Drinks"
	orderID := int64(10)
	return &model.Snapshot{
		Products: []model.Product{
			{ID: 1, Name: "Coffee", Price: decimal.RequireFromString("2.5"), Category: "Drinks", Brand: &brand},
			{ID: 2, Name: "Muffin", Price: decimal.RequireFromString("3.25"), Category: "Bakery"},
		},
		Categories: []model.Category{
			{ID: 1, Name: "Drinks", Description: &desc},
		},
		Orders: []model.Order{
			{
				ID: 10, Date: "2024-05-01T09:30:00Z", Total: decimal.RequireFromString("8.25"),
				TotalPaid: decimal.NewFromInt(10), Change: decimal.RequireFromString("1.75"), ItemCount: 3,
				PaymentMethod: "cash", Status: "completed",
				Items: []model.OrderItem{
					{ProductID: 1, Name: "Coffee", Price: decimal.RequireFromString("2.5"), Quantity: 2, Category: &cat},
					{ProductID: 2, Name: "Muffin", Price: decimal.RequireFromString("3.25"), Quantity: 1},
				},
			},
		},
		Tables: []model.Table{{ID: 1, Name: "Window", Available: false, CurrentOrderID: &orderID}},
		Users:  []model.User{{ID: 1, Name: "Ana", Pin: "1234", PinnedProductIDs: []int64{2, 1}}},
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestExportClearImportRoundTrip(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	if err := uc.Import(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("seed import: %v", err)
	}
	before, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if err := uc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	empty, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("Export after clear: %v", err)
	}
	if n := len(empty.Products) + len(empty.Categories) + len(empty.Orders) + len(empty.Tables) + len(empty.Users); n != 0 {
		t.Fatalf("%d records survived ClearAll", n)
	}

	if err := uc.Import(ctx, before); err != nil {
		t.Fatalf("Import: %v", err)
	}
	after, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if got, want := mustJSON(t, after), mustJSON(t, before); got != want {
		t.Errorf("round trip mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	if err := uc.Import(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Import: %v", err)
	}
	once, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := uc.Import(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("second Import: %v", err)
	}
	twice, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if mustJSON(t, once) != mustJSON(t, twice) {
		t.Error("second import changed the data")
	}
	if len(twice.Orders[0].Items) != 2 {
		t.Errorf("items duplicated: %d", len(twice.Orders[0].Items))
	}
}

func TestImportSkipsAbsentTablesAndUsers(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	if err := uc.Import(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var legacy model.Snapshot
	raw := `{"products":[{"id":3,"name":"Tea","price":2,"category":"Drinks"}],"categories":[],"orders":[]}`
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := uc.Import(ctx, &legacy); err != nil {
		t.Fatalf("Import legacy: %v", err)
	}

	snap, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(snap.Products) != 3 {
		t.Errorf("products = %d, want 3", len(snap.Products))
	}
	if len(snap.Tables) != 1 || len(snap.Users) != 1 {
		t.Errorf("tables/users touched: %d/%d", len(snap.Tables), len(snap.Users))
	}
}

func TestImportNilSnapshot(t *testing.T) {
	uc, _ := newUseCase(t)
	if err := uc.Import(context.Background(), nil); !errors.Is(err, transfer.ErrNilSnapshot) {
		t.Errorf("Import(nil) err = %v, want ErrNilSnapshot", err)
	}
}

func TestClearAllKeepsLicense(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()

	err := s.Do(ctx, "seed license", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx, `
			INSERT INTO license (id, key_hash, email, machine_fingerprint, activated_at, is_active, license_type)
			VALUES (1, 'h', 'a@b.com', 'fp', 1, 1, 'pro')`)
		return err
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := uc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	var n int
	_ = s.Do(ctx, "count", func(q sqlx.ExtContext) error {
		return sqlx.GetContext(ctx, q, &n, `SELECT COUNT(*) FROM license`)
	})
	if n != 1 {
		t.Errorf("license rows = %d, want 1", n)
	}
}

func TestExportWorkbook(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	if err := uc.Import(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var buf bytes.Buffer
	if err := uc.ExportWorkbook(ctx, &buf); err != nil {
		t.Fatalf("ExportWorkbook: %v", err)
	}

	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBinary: %v", err)
	}

	wantRows := map[string]int{
		SheetProducts:   3,
		SheetCategories: 2,
		SheetOrders:     2,
		SheetOrderItems: 3,
		SheetTables:     2,
		SheetUsers:      2,
	}
	for name, rows := range wantRows {
		sheet, ok := file.Sheet[name]
		if !ok {
			t.Errorf("missing sheet %q", name)
			continue
		}
		if len(sheet.Rows) != rows {
			t.Errorf("sheet %q has %d rows, want %d", name, len(sheet.Rows), rows)
		}
	}

	products := file.Sheet[SheetProducts]
	if got := products.Rows[1].Cells[1].Value; got != "Coffee" {
		t.Errorf("first product name = %q", got)
	}
	users := file.Sheet[SheetUsers]
	if got := users.Rows[1].Cells[2].Value; got != "2,1" {
		t.Errorf("pinned ids = %q", got)
	}
}
