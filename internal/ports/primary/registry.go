// Package primary defines the primary ports (driving interfaces) for the
// application: the service contracts the CLI layer programs against.
package primary

import (
	"context"

	"github.com/example/warden/internal/models"
)

// AgentService defines the primary port for agent registry operations.
type AgentService interface {
	// RegisterAgent adds a worker to the registry. AI agents are probed for
	// liveness; a failed probe registers them as unverified rather than
	// failing the operation.
	RegisterAgent(ctx context.Context, req RegisterAgentRequest) (*RegisterAgentResponse, error)

	// ListAgents returns every registered agent.
	ListAgents(ctx context.Context) ([]*models.Agent, error)
}

// RegisterAgentRequest contains parameters for registering an agent.
type RegisterAgentRequest struct {
	AgentID string
	Kind    string // models.AgentKindAI or models.AgentKindHuman
	Session string // required for AI agents
	Handle  string // tracker username for human developers
}

// RegisterAgentResponse contains the result of registering an agent.
type RegisterAgentResponse struct {
	Agent *models.Agent
	// ProbeWarning is set when the liveness probe against the messaging
	// collaborator failed and the agent was registered unverified.
	ProbeWarning string
}
