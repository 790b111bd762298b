package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/store/storetest"
	"github.com/fekuna/omnipos-desktop/internal/user/repository"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
)

func TestUpsertUserAssignsMissingID(t *testing.T) {
	uc := NewUserUseCase(repository.NewSQLiteRepository(storetest.New(t)), idgen.NewSequence(70), logger.NewNop())
	ctx := context.Background()

	u, err := uc.UpsertUser(ctx, &model.User{Name: "Ana", Pin: "1234", PinnedProductIDs: []int64{3, 5}})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if u.ID != 70 {
		t.Errorf("assigned id = %d, want 70", u.ID)
	}

	kept, err := uc.UpsertUser(ctx, &model.User{ID: 1, Name: "Ben", Pin: "0000"})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if kept.ID != 1 {
		t.Errorf("explicit id replaced: %d", kept.ID)
	}

	users, err := uc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	for _, got := range users {
		if got.ID == 70 && len(got.PinnedProductIDs) != 2 {
			t.Errorf("pinned ids = %v", got.PinnedProductIDs)
		}
	}
}
