package transfer

import "context"

// Repository covers the bulk operations that span every table.
type Repository interface {
	ClearAll(ctx context.Context) error
}
