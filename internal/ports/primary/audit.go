package primary

import "context"

// AuditService defines the primary port for reading the audit ledger.
type AuditService interface {
	// ListGateEvents returns the most recent gate decisions, newest first.
	ListGateEvents(ctx context.Context, limit int) ([]*GateEvent, error)

	// ListPollEvents returns the most recent recorded polls, newest first.
	ListPollEvents(ctx context.Context, limit int) ([]*PollEvent, error)
}

// GateEvent represents one stop-gate decision at the port boundary.
type GateEvent struct {
	ID              int64  `json:"id"`
	Decision        string `json:"decision"`
	Reason          string `json:"reason"`
	Phase           string `json:"phase,omitempty"`
	IncompleteCount int    `json:"incomplete_count"`
	CreatedAt       string `json:"created_at"`
}

// PollEvent represents one recorded poll at the port boundary.
type PollEvent struct {
	ID         int64  `json:"id"`
	TaskUUID   string `json:"task_uuid"`
	ModuleID   string `json:"module_id"`
	AgentID    string `json:"agent_id"`
	PollNumber int    `json:"poll_number"`
	Status     string `json:"status"`
	Issues     string `json:"issues,omitempty"`
	CreatedAt  string `json:"created_at"`
}
