package licenseserver

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/license"
)

type UseCase interface {
	Validate(ctx context.Context, req *license.ValidationRequest, client Client) (*license.ValidationResponse, error)
	CreateLicense(ctx context.Context, req *CreateLicenseRequest) (*CreateLicenseResponse, error)
	ListLicenses(ctx context.Context) ([]License, error)
	LicensesByEmail(ctx context.Context, email string) ([]License, error)
	Revoke(ctx context.Context, id int64) (bool, error)
	Reactivate(ctx context.Context, id int64) (bool, error)
	ValidationHistory(ctx context.Context, id int64) ([]ValidationLog, error)
}
