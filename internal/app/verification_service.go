package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/warden/internal/core/verify"
	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// VerificationServiceImpl implements the VerificationService interface.
type VerificationServiceImpl struct {
	store     secondary.StateStore
	messenger secondary.Messenger
	now       func() time.Time
}

// NewVerificationService creates a new VerificationService with injected
// dependencies.
func NewVerificationService(store secondary.StateStore, messenger secondary.Messenger) *VerificationServiceImpl {
	return &VerificationServiceImpl{store: store, messenger: messenger, now: time.Now}
}

// NewVerificationServiceWithClock creates a VerificationService with a
// custom clock.
func NewVerificationServiceWithClock(store secondary.StateStore, messenger secondary.Messenger, now func() time.Time) *VerificationServiceImpl {
	return &VerificationServiceImpl{store: store, messenger: messenger, now: now}
}

// RecordRepetition records that the agent restated its instructions.
func (s *VerificationServiceImpl) RecordRepetition(ctx context.Context, req primary.RecordRepetitionRequest) (*primary.VerificationResponse, error) {
	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	assignment := snap.FindAssignment(req.TaskUUID)
	if assignment == nil {
		return nil, fmt.Errorf("assignment %s: %w", req.TaskUUID, ErrAssignmentNotFound)
	}

	if err := verify.RecordRepetition(&assignment.Verification); err != nil {
		return nil, fmt.Errorf("assignment %s: %w", req.TaskUUID, err)
	}

	resp := &primary.VerificationResponse{Assignment: assignment}

	if req.Incorrect {
		if err := verify.RequestCorrection(&assignment.Verification); err != nil {
			return nil, fmt.Errorf("assignment %s: %w", req.TaskUUID, err)
		}
		if module := snap.FindModule(assignment.ModuleID); module != nil {
			module.VerificationLoops++
		}
		if agent := snap.RegisteredAgents.Find(assignment.AgentID); agent != nil && agent.Kind == models.AgentKindAI {
			if nerr := s.sendCorrectionMessage(ctx, agent, assignment); nerr != nil {
				resp.NotifyWarning = fmt.Sprintf("correction request not delivered (%v); notify %s manually", nerr, agent.ID)
			} else {
				resp.Notified = true
			}
		}
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist verification: %w", err)
	}

	return resp, nil
}

// Authorize marks the received repetition correct and sanctions
// implementation work.
func (s *VerificationServiceImpl) Authorize(ctx context.Context, taskUUID string) (*primary.VerificationResponse, error) {
	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	assignment := snap.FindAssignment(taskUUID)
	if assignment == nil {
		return nil, fmt.Errorf("assignment %s: %w", taskUUID, ErrAssignmentNotFound)
	}

	if err := verify.Authorize(&assignment.Verification, s.now()); err != nil {
		return nil, fmt.Errorf("assignment %s: %w", taskUUID, err)
	}
	assignment.Status = models.AssignmentStatusAuthorized

	resp := &primary.VerificationResponse{Assignment: assignment}

	if agent := snap.RegisteredAgents.Find(assignment.AgentID); agent != nil && agent.Kind == models.AgentKindAI {
		if nerr := s.sendAuthorizationMessage(ctx, agent, assignment); nerr != nil {
			resp.NotifyWarning = fmt.Sprintf("authorization message not delivered (%v); notify %s manually", nerr, agent.ID)
		} else {
			resp.Notified = true
		}
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist authorization: %w", err)
	}

	return resp, nil
}

// Helper methods

func (s *VerificationServiceImpl) sendCorrectionMessage(ctx context.Context, agent *models.Agent, assignment *models.Assignment) error {
	return s.messenger.Send(ctx, secondary.OutboundMessage{
		To:       agent.Session,
		Subject:  fmt.Sprintf("Correction needed: %s", assignment.ModuleID),
		Priority: secondary.MessagePriorityHigh,
		Type:     "verification_correction",
		Body:     "Your instruction repetition was not correct. Re-read the assignment and restate the instructions again.",
	})
}

func (s *VerificationServiceImpl) sendAuthorizationMessage(ctx context.Context, agent *models.Agent, assignment *models.Assignment) error {
	return s.messenger.Send(ctx, secondary.OutboundMessage{
		To:       agent.Session,
		Subject:  fmt.Sprintf("Authorized: %s", assignment.ModuleID),
		Priority: secondary.MessagePriorityNormal,
		Type:     "verification_authorized",
		Body:     fmt.Sprintf("Your repetition for task %s is correct. You are authorized to begin implementation.", assignment.TaskUUID),
	})
}

// Ensure VerificationServiceImpl implements the interface.
var _ primary.VerificationService = (*VerificationServiceImpl)(nil)
