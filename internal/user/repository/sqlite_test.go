package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/store/storetest"
	"github.com/jmoiron/sqlx"
)

func TestPinnedProductsRoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(storetest.New(t))
	ctx := context.Background()

	pic := "avatar.png"
	u := &model.User{ID: 1, Name: "Ana", ProfilePicture: &pic, Pin: "0420", PinnedProductIDs: []int64{3, 1, 2}}
	if err := repo.Upsert(ctx, u); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &model.User{ID: 2, Name: "Ben", Pin: "1111"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	byID := map[int64]model.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	if got := byID[1].PinnedProductIDs; !reflect.DeepEqual(got, []int64{3, 1, 2}) {
		t.Errorf("pinned = %v, want [3 1 2]", got)
	}
	if byID[1].Pin != "0420" || byID[1].ProfilePicture == nil || *byID[1].ProfilePicture != pic {
		t.Errorf("user 1 = %+v", byID[1])
	}
	if byID[2].PinnedProductIDs != nil {
		t.Errorf("user 2 pinned = %v, want nil", byID[2].PinnedProductIDs)
	}
}

func TestMalformedPinnedProductsReadAsNone(t *testing.T) {
	s := storetest.New(t)
	repo := NewSQLiteRepository(s)
	ctx := context.Background()

	err := s.Do(ctx, "seed", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO users (id, name, pin, pinned_product_ids) VALUES (5, 'Cleo', '9999', 'not json [')`)
		return err
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users[0].Name != "Cleo" || users[0].PinnedProductIDs != nil {
		t.Errorf("user = %+v", users[0])
	}
}

func TestUserDelete(t *testing.T) {
	repo := NewSQLiteRepository(storetest.New(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, &model.User{ID: 1, Name: "Ana", Pin: "1"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("users left: %+v", users)
	}
}
