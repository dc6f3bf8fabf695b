package gate

import (
	"strings"
	"testing"

	"github.com/example/warden/internal/models"
)

func TestDecideAbsentStateAllows(t *testing.T) {
	d := Decide(nil, false)
	if d.Blocked() {
		t.Errorf("absent state should allow, got %+v", d)
	}
	if d.Reason != "no orchestration state found" {
		t.Errorf("unexpected reason: %q", d.Reason)
	}

	// A snapshot reported as not-found is still absent.
	d = Decide(&models.Snapshot{Phase: models.PhaseOrchestration}, false)
	if d.Blocked() {
		t.Errorf("found=false should allow regardless of content, got %+v", d)
	}
}

func TestDecideUnrecognizedPhaseAllows(t *testing.T) {
	for _, phase := range []string{"", "bootstrap", "review", "PLAN"} {
		d := Decide(&models.Snapshot{Phase: phase}, true)
		if d.Blocked() {
			t.Errorf("phase %q should allow, got %+v", phase, d)
		}
	}
}

func TestDecidePlanPhase(t *testing.T) {
	d := Decide(&models.Snapshot{Phase: models.PhasePlan, PlanPhaseComplete: false}, true)
	if !d.Blocked() {
		t.Fatalf("incomplete plan should block, got %+v", d)
	}
	if d.SystemMessage == "" || d.UserMessage == "" {
		t.Errorf("block decision missing guidance: %+v", d)
	}

	d = Decide(&models.Snapshot{Phase: models.PhasePlan, PlanPhaseComplete: true}, true)
	if d.Blocked() {
		t.Errorf("complete plan should allow, got %+v", d)
	}
}

func TestDecideOrchestrationIncompleteModules(t *testing.T) {
	snap := &models.Snapshot{
		Phase: models.PhaseOrchestration,
		ModulesStatus: []*models.Module{
			{ID: "auth-core", Status: "in-progress"},
			{ID: "x", Status: models.ModuleStatusComplete},
		},
	}

	d := Decide(snap, true)
	if !d.Blocked() {
		t.Fatalf("incomplete module should block, got %+v", d)
	}
	if !strings.Contains(d.Reason, "auth-core") || !strings.Contains(d.Reason, "in-progress") {
		t.Errorf("reason should enumerate incomplete modules: %q", d.Reason)
	}
	if strings.Contains(d.Reason, "x (") {
		t.Errorf("reason should not list complete modules: %q", d.Reason)
	}
}

func TestDecideOrchestrationVerificationLoops(t *testing.T) {
	snap := &models.Snapshot{
		Phase: models.PhaseOrchestration,
		ModulesStatus: []*models.Module{
			{ID: "a", Status: models.ModuleStatusComplete},
			{ID: "b", Status: models.ModuleStatusDone},
		},
		VerificationLoopsRemaining: 2,
	}

	d := Decide(snap, true)
	if !d.Blocked() {
		t.Fatalf("remaining verification loops should block, got %+v", d)
	}

	snap.VerificationLoopsRemaining = 0
	d = Decide(snap, true)
	if d.Blocked() {
		t.Errorf("fully done orchestration should allow, got %+v", d)
	}
}

func TestDecideDoesNotMutateSnapshot(t *testing.T) {
	snap := &models.Snapshot{
		Phase:         models.PhaseOrchestration,
		ModulesStatus: []*models.Module{{ID: "m", Status: models.ModuleStatusPending}},
	}
	Decide(snap, true)
	if snap.ModulesStatus[0].Status != models.ModuleStatusPending {
		t.Error("Decide mutated the snapshot")
	}
}
