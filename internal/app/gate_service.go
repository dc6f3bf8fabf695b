package app

import (
	"context"

	"github.com/example/warden/internal/core/gate"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// GateServiceImpl implements the GateService interface.
type GateServiceImpl struct {
	store secondary.StateStore
	audit secondary.AuditRepository // optional, nil disables audit
}

// NewGateService creates a new GateService with injected dependencies.
func NewGateService(store secondary.StateStore, audit secondary.AuditRepository) *GateServiceImpl {
	return &GateServiceImpl{store: store, audit: audit}
}

// Decide loads the snapshot and evaluates the stop-gate policy. Absent,
// empty, or unreadable state fail-opens to allow; this read never fails.
func (s *GateServiceImpl) Decide(ctx context.Context) gate.Decision {
	snap, found, err := s.store.Load(ctx)
	if err != nil {
		// Corrupt governance state must not hang the host process.
		snap, found = nil, false
	}

	decision := gate.Decide(snap, found)

	if s.audit != nil {
		rec := &secondary.GateEventRecord{
			Decision: decision.Decision,
			Reason:   decision.Reason,
		}
		if snap != nil {
			rec.Phase = snap.Phase
			rec.IncompleteCount = len(snap.IncompleteModules())
		}
		_ = s.audit.RecordGateEvent(ctx, rec)
	}

	return decision
}

// Ensure GateServiceImpl implements the interface.
var _ primary.GateService = (*GateServiceImpl)(nil)
