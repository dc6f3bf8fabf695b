// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"

	"github.com/example/warden/internal/models"
)

// StateStore defines the secondary port for orchestration snapshot
// persistence. The snapshot is always reloaded on every invocation; no
// implementation may cache it across calls.
type StateStore interface {
	// Load reads the snapshot from durable storage.
	// found=false with a nil error means the document is absent or empty.
	// found=false with a non-nil error means the document exists but could
	// not be parsed: read-only policy queries treat this as absence, while
	// mutation operations must treat it as a hard failure.
	Load(ctx context.Context) (snap *models.Snapshot, found bool, err error)

	// Save atomically replaces the snapshot (temp file + rename), preserving
	// any free-form trailing text of the document verbatim.
	Save(ctx context.Context, snap *models.Snapshot) error
}
