package app

import (
	"context"
	"fmt"

	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	audit secondary.AuditRepository
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(audit secondary.AuditRepository) *AuditServiceImpl {
	return &AuditServiceImpl{audit: audit}
}

// ListGateEvents returns the most recent gate decisions, newest first.
func (s *AuditServiceImpl) ListGateEvents(ctx context.Context, limit int) ([]*primary.GateEvent, error) {
	if s.audit == nil {
		return nil, ErrLedgerUnavailable
	}
	records, err := s.audit.ListGateEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list gate events: %w", err)
	}

	events := make([]*primary.GateEvent, len(records))
	for i, r := range records {
		events[i] = &primary.GateEvent{
			ID:              r.ID,
			Decision:        r.Decision,
			Reason:          r.Reason,
			Phase:           r.Phase,
			IncompleteCount: r.IncompleteCount,
			CreatedAt:       r.CreatedAt,
		}
	}
	return events, nil
}

// ListPollEvents returns the most recent recorded polls, newest first.
func (s *AuditServiceImpl) ListPollEvents(ctx context.Context, limit int) ([]*primary.PollEvent, error) {
	if s.audit == nil {
		return nil, ErrLedgerUnavailable
	}
	records, err := s.audit.ListPollEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll events: %w", err)
	}

	events := make([]*primary.PollEvent, len(records))
	for i, r := range records {
		events[i] = &primary.PollEvent{
			ID:         r.ID,
			TaskUUID:   r.TaskUUID,
			ModuleID:   r.ModuleID,
			AgentID:    r.AgentID,
			PollNumber: r.PollNumber,
			Status:     r.Status,
			Issues:     r.Issues,
			CreatedAt:  r.CreatedAt,
		}
	}
	return events, nil
}

// Ensure AuditServiceImpl implements the interface.
var _ primary.AuditService = (*AuditServiceImpl)(nil)
