package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Auth Core", "auth-core"},
		{"punctuation run", "Billing -- API / v2", "billing-api-v2"},
		{"leading and trailing junk", "  !!Payment Gateway!!  ", "payment-gateway"},
		{"already a slug", "auth-core", "auth-core"},
		{"digits preserved", "OAuth2 Provider", "oauth2-provider"},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestModuleAssignable(t *testing.T) {
	for status, want := range map[string]bool{
		ModuleStatusPending:    true,
		ModuleStatusPlanned:    true,
		ModuleStatusAssigned:   false,
		ModuleStatusInProgress: false,
		ModuleStatusComplete:   false,
		ModuleStatusDone:       false,
	} {
		m := &Module{ID: "x", Status: status}
		if got := m.Assignable(); got != want {
			t.Errorf("Assignable() with status %s = %v, want %v", status, got, want)
		}
	}
}

func TestRegistryFindSpansVariants(t *testing.T) {
	reg := AgentRegistry{
		AIAgents:        []*Agent{{ID: "impl-1", Kind: AgentKindAI, Session: "agent:impl-1"}},
		HumanDevelopers: []*Agent{{ID: "alice", Kind: AgentKindHuman, Handle: "alice-gh"}},
	}

	if a := reg.Find("impl-1"); a == nil || a.Kind != AgentKindAI {
		t.Errorf("Find(impl-1) = %+v, want AI agent", a)
	}
	if a := reg.Find("alice"); a == nil || a.Kind != AgentKindHuman {
		t.Errorf("Find(alice) = %+v, want human developer", a)
	}
	if a := reg.Find("nobody"); a != nil {
		t.Errorf("Find(nobody) = %+v, want nil", a)
	}
	if got := len(reg.All()); got != 2 {
		t.Errorf("All() returned %d agents, want 2", got)
	}
}
