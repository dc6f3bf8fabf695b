package secondary

import "context"

// Message priority constants.
const (
	MessagePriorityNormal = "normal"
	MessagePriorityHigh   = "high"
	MessagePriorityUrgent = "urgent"
)

// OutboundMessage is a message to an AI agent's session.
type OutboundMessage struct {
	To       string
	Subject  string
	Priority string
	Type     string
	Body     string
}

// Messenger defines the secondary port for the agent messaging collaborator.
// Implementations must apply a bounded timeout; callers treat failures as
// soft (logged, surfaced, never rolling back a state mutation).
type Messenger interface {
	// Send delivers a message to the named recipient session.
	Send(ctx context.Context, msg OutboundMessage) error

	// Ping probes whether the recipient session is reachable.
	Ping(ctx context.Context, to string) error
}
