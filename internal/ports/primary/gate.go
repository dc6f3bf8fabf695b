package primary

import (
	"context"

	"github.com/example/warden/internal/core/gate"
)

// GateService defines the primary port for the stop-gate policy.
type GateService interface {
	// Decide loads the snapshot and evaluates the stop-gate policy.
	// It never fails: absent or unreadable state fail-opens to allow.
	Decide(ctx context.Context) gate.Decision
}
