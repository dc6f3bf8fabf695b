package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
)

func TestRegisterAgentAI(t *testing.T) {
	store := storeWith(testSnapshot())
	messenger := &mockMessenger{}
	svc := NewAgentService(store, messenger)

	resp, err := svc.RegisterAgent(context.Background(), primary.RegisterAgentRequest{
		AgentID: "impl-2",
		Kind:    models.AgentKindAI,
		Session: "agent:impl-2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Agent.Status != models.AgentStatusAvailable {
		t.Errorf("status = %s, want available", resp.Agent.Status)
	}
	if resp.ProbeWarning != "" {
		t.Errorf("unexpected probe warning: %s", resp.ProbeWarning)
	}
	if len(messenger.pinged) != 1 || messenger.pinged[0] != "agent:impl-2" {
		t.Errorf("pinged = %v, want the new session", messenger.pinged)
	}
	if store.saved == nil || store.saved.RegisteredAgents.Find("impl-2") == nil {
		t.Error("registration not persisted")
	}
}

func TestRegisterAgentProbeFailureRegistersUnverified(t *testing.T) {
	store := storeWith(testSnapshot())
	messenger := &mockMessenger{pingErr: errors.New("connection refused")}
	svc := NewAgentService(store, messenger)

	resp, err := svc.RegisterAgent(context.Background(), primary.RegisterAgentRequest{
		AgentID: "impl-2",
		Kind:    models.AgentKindAI,
		Session: "agent:impl-2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Agent.Status != models.AgentStatusUnverified {
		t.Errorf("status = %s, want unverified", resp.Agent.Status)
	}
	if resp.ProbeWarning == "" {
		t.Error("expected probe warning")
	}
	if store.saveCount != 1 {
		t.Error("probe failure must not block persistence")
	}
}

func TestRegisterAgentHuman(t *testing.T) {
	store := storeWith(testSnapshot())
	messenger := &mockMessenger{}
	svc := NewAgentService(store, messenger)

	resp, err := svc.RegisterAgent(context.Background(), primary.RegisterAgentRequest{
		AgentID: "bob",
		Kind:    models.AgentKindHuman,
		Handle:  "bob-gh",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Agent.Handle != "bob-gh" {
		t.Errorf("handle = %s", resp.Agent.Handle)
	}
	if len(messenger.pinged) != 0 {
		t.Error("humans must not be probed")
	}
	if len(store.saved.RegisteredAgents.HumanDevelopers) != 2 {
		t.Error("human not appended to its variant list")
	}
}

func TestRegisterAgentValidation(t *testing.T) {
	store := storeWith(testSnapshot())
	svc := NewAgentService(store, &mockMessenger{})
	ctx := context.Background()

	// Duplicate across variants.
	_, err := svc.RegisterAgent(ctx, primary.RegisterAgentRequest{
		AgentID: "alice", Kind: models.AgentKindAI, Session: "agent:alice",
	})
	if !errors.Is(err, ErrDuplicateAgent) {
		t.Errorf("got %v, want ErrDuplicateAgent", err)
	}

	// AI without session.
	_, err = svc.RegisterAgent(ctx, primary.RegisterAgentRequest{
		AgentID: "impl-2", Kind: models.AgentKindAI,
	})
	if !errors.Is(err, ErrMissingSession) {
		t.Errorf("got %v, want ErrMissingSession", err)
	}

	// Unknown kind.
	_, err = svc.RegisterAgent(ctx, primary.RegisterAgentRequest{
		AgentID: "x", Kind: "robot",
	})
	if !errors.Is(err, ErrInvalidKind) {
		t.Errorf("got %v, want ErrInvalidKind", err)
	}

	if store.saveCount != 0 {
		t.Error("validation failures must not persist")
	}
}

func TestRegisterAgentRequiresState(t *testing.T) {
	svc := NewAgentService(&mockStateStore{found: false}, &mockMessenger{})
	_, err := svc.RegisterAgent(context.Background(), primary.RegisterAgentRequest{
		AgentID: "impl-2", Kind: models.AgentKindAI, Session: "agent:impl-2",
	})
	if !errors.Is(err, ErrNoState) {
		t.Errorf("got %v, want ErrNoState", err)
	}
}

func TestListAgents(t *testing.T) {
	svc := NewAgentService(storeWith(testSnapshot()), &mockMessenger{})
	agents, err := svc.ListAgents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(agents) != 2 {
		t.Errorf("got %d agents, want 2", len(agents))
	}

	// Absent state lists nothing.
	svc = NewAgentService(&mockStateStore{}, &mockMessenger{})
	agents, err = svc.ListAgents(context.Background())
	if err != nil || agents != nil {
		t.Errorf("absent state: got %v, %v", agents, err)
	}
}
