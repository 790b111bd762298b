package transfer

import (
	"context"
	"errors"
	"io"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

// ErrNilSnapshot is returned by Import when there is nothing to import.
var ErrNilSnapshot = errors.New("snapshot is nil")

type UseCase interface {
	Export(ctx context.Context) (*model.Snapshot, error)
	// Import upserts every record of s. Tables and users are skipped when
	// the snapshot does not carry them. A failure part way through leaves
	// the records written so far in place.
	Import(ctx context.Context, s *model.Snapshot) error
	ClearAll(ctx context.Context) error
	ExportWorkbook(ctx context.Context, w io.Writer) error
}
