package primary

import (
	"context"

	"github.com/example/warden/internal/models"
)

// AssignmentService defines the primary port for assignment operations.
type AssignmentService interface {
	// AssignModule binds a module to an agent, creating an assignment in
	// pending_verification and dispatching the instruction-verification
	// request to AI agents.
	AssignModule(ctx context.Context, req AssignModuleRequest) (*AssignModuleResponse, error)

	// ReassignModule moves an assigned module to a different agent. The
	// superseded assignment is archived to the snapshot's history.
	ReassignModule(ctx context.Context, req ReassignModuleRequest) (*ReassignModuleResponse, error)

	// ListAssignments returns the active assignments in document order.
	ListAssignments(ctx context.Context) ([]*models.Assignment, error)
}

// AssignModuleRequest contains parameters for assigning a module.
type AssignModuleRequest struct {
	ModuleID string
	AgentID  string
}

// AssignModuleResponse contains the result of assigning a module.
type AssignModuleResponse struct {
	Assignment *models.Assignment
	// Notified reports whether the assignment message reached an AI agent.
	Notified bool
	// NotifyWarning is set when delivery failed and the operator must
	// notify the agent manually.
	NotifyWarning string
}

// ReassignModuleRequest contains parameters for reassigning a module.
type ReassignModuleRequest struct {
	ModuleID   string
	NewAgentID string
}

// ReassignModuleResponse contains the result of reassigning a module.
type ReassignModuleResponse struct {
	Assignment *models.Assignment
	OldAgentID string
	// StopNotified reports whether the old AI agent received a stop-work
	// message.
	StopNotified bool
	// Notified reports whether the new AI agent received the assignment
	// message.
	Notified bool
	// NotifyWarning aggregates delivery failures for manual follow-up.
	NotifyWarning string
}
