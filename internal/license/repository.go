package license

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

// Repository keeps at most one license record.
type Repository interface {
	// Get returns nil, nil when nothing is stored.
	Get(ctx context.Context) (*model.LicenseKey, error)
	// Save replaces any stored record with key.
	Save(ctx context.Context, key *model.LicenseKey) error
	Clear(ctx context.Context) error
}
