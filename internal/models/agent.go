// Package models contains domain types for the warden orchestration state.
// Persistence lives in internal/adapters/statefile; these types double as the
// on-disk document schema.
package models

// Agent kind constants. Kind is the discriminant between the two variants:
// AI agents carry a routable messaging session, human developers a tracker
// handle.
const (
	AgentKindAI    = "ai"
	AgentKindHuman = "human"
)

// Agent status constants
const (
	AgentStatusAvailable  = "available"
	AgentStatusBusy       = "busy"
	AgentStatusUnverified = "unverified"
)

// Agent represents a registered worker.
type Agent struct {
	ID                   string `yaml:"agent_id" json:"agent_id"`
	Kind                 string `yaml:"kind" json:"kind"`
	Session              string `yaml:"session_name,omitempty" json:"session_name,omitempty"`
	Handle               string `yaml:"handle,omitempty" json:"handle,omitempty"`
	Status               string `yaml:"status" json:"status"`
	CurrentAssignment    string `yaml:"current_assignment,omitempty" json:"current_assignment,omitempty"`
	AssignmentsCompleted int    `yaml:"assignments_completed" json:"assignments_completed"`
}

// AgentRegistry holds registered agents, split by variant as stored in the
// state document.
type AgentRegistry struct {
	AIAgents        []*Agent `yaml:"ai_agents" json:"ai_agents"`
	HumanDevelopers []*Agent `yaml:"human_developers" json:"human_developers"`
}

// Find returns the agent with the given ID from either variant list, or nil.
// Agent IDs are unique across both variants.
func (r *AgentRegistry) Find(id string) *Agent {
	for _, a := range r.AIAgents {
		if a.ID == id {
			return a
		}
	}
	for _, a := range r.HumanDevelopers {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// All returns every registered agent, AI agents first.
func (r *AgentRegistry) All() []*Agent {
	agents := make([]*Agent, 0, len(r.AIAgents)+len(r.HumanDevelopers))
	agents = append(agents, r.AIAgents...)
	agents = append(agents, r.HumanDevelopers...)
	return agents
}
