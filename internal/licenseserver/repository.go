package licenseserver

import "context"

type Repository interface {
	// FindByKeyHash returns nil, nil when no license has that hash.
	FindByKeyHash(ctx context.Context, keyHash string) (*License, error)
	Create(ctx context.Context, l *License) error
	List(ctx context.Context) ([]License, error)
	ListByEmail(ctx context.Context, email string) ([]License, error)
	// SetActive reports whether a license with that id existed.
	SetActive(ctx context.Context, id int64, active bool) (bool, error)
	// RecordActivation binds the license to fingerprint and logs the
	// successful validation in one transaction.
	RecordActivation(ctx context.Context, id int64, fingerprint string, at int64, client Client) error
	ListValidationLogs(ctx context.Context, licenseID int64) ([]ValidationLog, error)
}
