package license

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

type UseCase interface {
	Status(ctx context.Context) (*model.LicenseStatus, error)
	// Activate validates key remotely and stores it on success. Rejections
	// and network failures come back as a non-activated status, not an error.
	Activate(ctx context.Context, key, email string) (*model.LicenseStatus, error)
	Fingerprint(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
