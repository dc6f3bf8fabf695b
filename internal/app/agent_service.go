package app

import (
	"context"
	"fmt"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// AgentServiceImpl implements the AgentService interface.
type AgentServiceImpl struct {
	store     secondary.StateStore
	messenger secondary.Messenger
}

// NewAgentService creates a new AgentService with injected dependencies.
func NewAgentService(store secondary.StateStore, messenger secondary.Messenger) *AgentServiceImpl {
	return &AgentServiceImpl{store: store, messenger: messenger}
}

// RegisterAgent adds a worker to the registry.
func (s *AgentServiceImpl) RegisterAgent(ctx context.Context, req primary.RegisterAgentRequest) (*primary.RegisterAgentResponse, error) {
	if req.AgentID == "" {
		return nil, fmt.Errorf("agent id is required")
	}
	switch req.Kind {
	case models.AgentKindAI:
		if req.Session == "" {
			return nil, fmt.Errorf("agent %s: %w", req.AgentID, ErrMissingSession)
		}
	case models.AgentKindHuman:
	default:
		return nil, fmt.Errorf("kind %q: %w", req.Kind, ErrInvalidKind)
	}

	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	// Agent IDs are unique across both variants.
	if snap.RegisteredAgents.Find(req.AgentID) != nil {
		return nil, fmt.Errorf("agent %s: %w", req.AgentID, ErrDuplicateAgent)
	}

	agent := &models.Agent{
		ID:     req.AgentID,
		Kind:   req.Kind,
		Status: models.AgentStatusAvailable,
	}

	resp := &primary.RegisterAgentResponse{Agent: agent}

	switch req.Kind {
	case models.AgentKindAI:
		agent.Session = req.Session
		// Liveness probe is advisory: a dead session registers as
		// unverified rather than failing the operation.
		if perr := s.messenger.Ping(ctx, req.Session); perr != nil {
			agent.Status = models.AgentStatusUnverified
			resp.ProbeWarning = fmt.Sprintf("liveness probe failed (%v); registered as unverified", perr)
		}
		snap.RegisteredAgents.AIAgents = append(snap.RegisteredAgents.AIAgents, agent)
	case models.AgentKindHuman:
		agent.Handle = req.Handle
		snap.RegisteredAgents.HumanDevelopers = append(snap.RegisteredAgents.HumanDevelopers, agent)
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist registration: %w", err)
	}

	return resp, nil
}

// ListAgents returns every registered agent.
func (s *AgentServiceImpl) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	snap, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return snap.RegisteredAgents.All(), nil
}

// Ensure AgentServiceImpl implements the interface.
var _ primary.AgentService = (*AgentServiceImpl)(nil)
