package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/warden/internal/core/verify"
	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface.
type AssignmentServiceImpl struct {
	store     secondary.StateStore
	messenger secondary.Messenger
	now       func() time.Time
}

// NewAssignmentService creates a new AssignmentService with injected
// dependencies.
func NewAssignmentService(store secondary.StateStore, messenger secondary.Messenger) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{store: store, messenger: messenger, now: time.Now}
}

// NewAssignmentServiceWithClock creates an AssignmentService with a custom
// clock.
func NewAssignmentServiceWithClock(store secondary.StateStore, messenger secondary.Messenger, now func() time.Time) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{store: store, messenger: messenger, now: now}
}

// AssignModule binds a module to an agent and dispatches the mandatory
// instruction-verification request to AI agents.
func (s *AssignmentServiceImpl) AssignModule(ctx context.Context, req primary.AssignModuleRequest) (*primary.AssignModuleResponse, error) {
	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	module := snap.FindModule(req.ModuleID)
	if module == nil {
		return nil, fmt.Errorf("module %s: %w", req.ModuleID, ErrModuleNotFound)
	}
	if module.AssignedTo != "" || snap.FindAssignmentForModule(module.ID) != nil {
		return nil, fmt.Errorf("module %s is assigned to %s: %w", module.ID, module.AssignedTo, ErrAlreadyAssigned)
	}
	if !module.Assignable() {
		return nil, fmt.Errorf("module %s has status %s: %w", module.ID, module.Status, ErrModuleNotAssignable)
	}

	agent := snap.RegisteredAgents.Find(req.AgentID)
	if agent == nil {
		return nil, fmt.Errorf("agent %s: %w", req.AgentID, ErrAgentNotFound)
	}

	assignment := s.newAssignment(module, agent)
	snap.ActiveAssignments = append(snap.ActiveAssignments, assignment)
	module.AssignedTo = agent.ID
	module.Status = models.ModuleStatusAssigned
	agent.Status = models.AgentStatusBusy
	agent.CurrentAssignment = module.ID

	resp := &primary.AssignModuleResponse{Assignment: assignment}

	// Notification is dispatched once the mutation is computed; its result
	// never gates persistence.
	if agent.Kind == models.AgentKindAI {
		if nerr := s.sendAssignmentMessage(ctx, agent, module, assignment); nerr != nil {
			resp.NotifyWarning = fmt.Sprintf("assignment message not delivered (%v); notify %s manually", nerr, agent.ID)
		} else {
			resp.Notified = true
		}
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist assignment: %w", err)
	}

	return resp, nil
}

// ReassignModule moves an assigned module to a different agent. The
// superseded assignment is archived, not discarded.
func (s *AssignmentServiceImpl) ReassignModule(ctx context.Context, req primary.ReassignModuleRequest) (*primary.ReassignModuleResponse, error) {
	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	module := snap.FindModule(req.ModuleID)
	if module == nil {
		return nil, fmt.Errorf("module %s: %w", req.ModuleID, ErrModuleNotFound)
	}
	if module.Completed() {
		return nil, fmt.Errorf("module %s: %w", module.ID, ErrModuleComplete)
	}
	if module.AssignedTo == "" {
		return nil, fmt.Errorf("module %s: %w", module.ID, ErrNotAssigned)
	}
	if module.AssignedTo == req.NewAgentID {
		return nil, fmt.Errorf("module %s: %w", module.ID, ErrSameAgent)
	}

	newAgent := snap.RegisteredAgents.Find(req.NewAgentID)
	if newAgent == nil {
		return nil, fmt.Errorf("agent %s: %w", req.NewAgentID, ErrAgentNotFound)
	}

	oldAgentID := module.AssignedTo
	oldAgent := snap.RegisteredAgents.Find(oldAgentID)

	resp := &primary.ReassignModuleResponse{OldAgentID: oldAgentID}
	var warnings []string

	if oldAgent != nil && oldAgent.Kind == models.AgentKindAI {
		if nerr := s.sendStopWorkMessage(ctx, oldAgent, module); nerr != nil {
			warnings = append(warnings, fmt.Sprintf("stop-work message not delivered (%v); notify %s manually", nerr, oldAgent.ID))
		} else {
			resp.StopNotified = true
		}
	}

	// Archive the superseded assignment instead of deleting it.
	for _, old := range snap.RemoveAssignmentsForModule(module.ID) {
		old.Status = models.AssignmentStatusSuperseded
		snap.AssignmentHistory = append(snap.AssignmentHistory, old)
	}
	if oldAgent != nil && oldAgent.CurrentAssignment == module.ID {
		oldAgent.Status = models.AgentStatusAvailable
		oldAgent.CurrentAssignment = ""
	}

	assignment := s.newAssignment(module, newAgent)
	snap.ActiveAssignments = append(snap.ActiveAssignments, assignment)
	module.AssignedTo = newAgent.ID
	module.Status = models.ModuleStatusAssigned
	newAgent.Status = models.AgentStatusBusy
	newAgent.CurrentAssignment = module.ID
	resp.Assignment = assignment

	if newAgent.Kind == models.AgentKindAI {
		if nerr := s.sendAssignmentMessage(ctx, newAgent, module, assignment); nerr != nil {
			warnings = append(warnings, fmt.Sprintf("assignment message not delivered (%v); notify %s manually", nerr, newAgent.ID))
		} else {
			resp.Notified = true
		}
	}
	resp.NotifyWarning = strings.Join(warnings, "; ")

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist reassignment: %w", err)
	}

	return resp, nil
}

// ListAssignments returns the active assignments in document order.
func (s *AssignmentServiceImpl) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	snap, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return snap.ActiveAssignments, nil
}

// Helper methods

func (s *AssignmentServiceImpl) newAssignment(module *models.Module, agent *models.Agent) *models.Assignment {
	return &models.Assignment{
		TaskUUID:     newTaskUUID(),
		ModuleID:     module.ID,
		AgentID:      agent.ID,
		Status:       models.AssignmentStatusPendingVerification,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
		Verification: verify.NewVerification(),
		Polling:      models.Polling{},
	}
}

func (s *AssignmentServiceImpl) sendAssignmentMessage(ctx context.Context, agent *models.Agent, module *models.Module, assignment *models.Assignment) error {
	body := fmt.Sprintf(
		"You are assigned module %s (%s), task %s.\n\nAcceptance criteria:\n%s\n\n"+
			"Before starting any work, restate these instructions in your own words and wait for authorization.",
		module.ID, module.Name, assignment.TaskUUID, module.AcceptanceCriteria)
	return s.messenger.Send(ctx, secondary.OutboundMessage{
		To:       agent.Session,
		Subject:  fmt.Sprintf("Assignment: %s", module.ID),
		Priority: secondary.MessagePriorityHigh,
		Type:     "assignment",
		Body:     body,
	})
}

func (s *AssignmentServiceImpl) sendStopWorkMessage(ctx context.Context, agent *models.Agent, module *models.Module) error {
	return s.messenger.Send(ctx, secondary.OutboundMessage{
		To:       agent.Session,
		Subject:  fmt.Sprintf("Stop work: %s", module.ID),
		Priority: secondary.MessagePriorityUrgent,
		Type:     "stop_work",
		Body:     fmt.Sprintf("Module %s has been reassigned. Stop all work on it immediately.", module.ID),
	})
}

// newTaskUUID generates a short random task token.
func newTaskUUID() string {
	return "task-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// Ensure AssignmentServiceImpl implements the interface.
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
