package secondary

import "context"

// GateEventRecord is one stop-gate decision as stored in the audit ledger.
type GateEventRecord struct {
	ID              int64
	Decision        string
	Reason          string
	Phase           string
	IncompleteCount int
	CreatedAt       string
}

// PollEventRecord is one recorded status check as stored in the audit ledger.
type PollEventRecord struct {
	ID         int64
	TaskUUID   string
	ModuleID   string
	AgentID    string
	PollNumber int
	Status     string
	Issues     string
	CreatedAt  string
}

// AuditRepository defines the secondary port for the append-only audit
// ledger. Writes are best-effort: callers ignore failures.
type AuditRepository interface {
	RecordGateEvent(ctx context.Context, rec *GateEventRecord) error
	RecordPollEvent(ctx context.Context, rec *PollEventRecord) error
	ListGateEvents(ctx context.Context, limit int) ([]*GateEventRecord, error)
	ListPollEvents(ctx context.Context, limit int) ([]*PollEventRecord, error)
}
