package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/warden/internal/core/schedule"
	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// PollServiceImpl implements the PollService interface.
type PollServiceImpl struct {
	store  secondary.StateStore
	audit  secondary.AuditRepository // optional, nil disables audit
	policy schedule.Policy
	now    func() time.Time
}

// NewPollService creates a new PollService with injected dependencies.
func NewPollService(store secondary.StateStore, audit secondary.AuditRepository, policy schedule.Policy) *PollServiceImpl {
	return &PollServiceImpl{store: store, audit: audit, policy: policy, now: time.Now}
}

// NewPollServiceWithClock creates a PollService with a custom clock.
func NewPollServiceWithClock(store secondary.StateStore, audit secondary.AuditRepository, policy schedule.Policy, now func() time.Time) *PollServiceImpl {
	return &PollServiceImpl{store: store, audit: audit, policy: policy, now: now}
}

// RecordPoll records a status check against an assignment.
func (s *PollServiceImpl) RecordPoll(ctx context.Context, req primary.RecordPollRequest) (*primary.RecordPollResponse, error) {
	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	assignment := snap.FindAssignment(req.TaskUUID)
	if assignment == nil {
		return nil, fmt.Errorf("assignment %s: %w", req.TaskUUID, ErrAssignmentNotFound)
	}

	// Polling finished work is a skip, not an error.
	if !assignment.Pollable() {
		return &primary.RecordPollResponse{Skipped: true, Assignment: assignment}, nil
	}

	now := s.now().UTC()
	ts := now.Format(time.RFC3339)

	assignment.Polling.PollCount++
	entry := models.PollEntry{
		PollNumber:     assignment.Polling.PollCount,
		Timestamp:      ts,
		Status:         req.Status,
		IssuesReported: req.Issues,
	}
	assignment.Polling.PollHistory = append(assignment.Polling.PollHistory, entry)
	assignment.Polling.LastPoll = ts
	assignment.Polling.NextPollDue = now.Add(s.policy.Interval).Format(time.RFC3339)

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist poll: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.RecordPollEvent(ctx, &secondary.PollEventRecord{
			TaskUUID:   assignment.TaskUUID,
			ModuleID:   assignment.ModuleID,
			AgentID:    assignment.AgentID,
			PollNumber: entry.PollNumber,
			Status:     entry.Status,
			Issues:     entry.IssuesReported,
		})
	}

	return &primary.RecordPollResponse{Assignment: assignment, Entry: entry}, nil
}

// DueAssignments classifies every in-flight assignment, most urgent first.
func (s *PollServiceImpl) DueAssignments(ctx context.Context) ([]schedule.Classification, error) {
	snap, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.policy.ClassifySnapshot(snap, s.now().UTC()), nil
}

// Ensure PollServiceImpl implements the interface.
var _ primary.PollService = (*PollServiceImpl)(nil)
