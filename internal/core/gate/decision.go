// Package gate implements the stop-gate policy: the pure decision over an
// orchestration snapshot that determines whether the host process may
// terminate. Absence or corruption of governance state fail-opens to allow
// so that bad state never deadlocks automation.
package gate

import (
	"fmt"
	"strings"

	"github.com/example/warden/internal/models"
)

// Decision outcomes.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Decision is the stop-gate verdict.
type Decision struct {
	Decision      string `json:"decision"`
	Reason        string `json:"reason"`
	SystemMessage string `json:"system_message,omitempty"`
	UserMessage   string `json:"user_message,omitempty"`
}

// Blocked reports whether the decision blocks termination.
func (d Decision) Blocked() bool {
	return d.Decision == DecisionBlock
}

// Decide evaluates the stop-gate policy over a snapshot. found=false means
// the state document was absent, empty, or unreadable. The function is
// deterministic, never mutates the snapshot, and never calls collaborators.
func Decide(snap *models.Snapshot, found bool) Decision {
	if !found || snap == nil {
		return allow("no orchestration state found")
	}

	switch snap.Phase {
	case models.PhasePlan:
		if !snap.PlanPhaseComplete {
			return block("plan phase is not complete",
				"Planning is still in progress. Finish the plan and set plan_phase_complete before stopping.")
		}
		return allow("plan phase complete")

	case models.PhaseOrchestration:
		incomplete := snap.IncompleteModules()
		if len(incomplete) > 0 {
			parts := make([]string, len(incomplete))
			for i, m := range incomplete {
				parts[i] = fmt.Sprintf("%s (%s)", m.ID, m.Status)
			}
			return block(
				fmt.Sprintf("%d module(s) incomplete: %s", len(incomplete), strings.Join(parts, ", ")),
				"Orchestration has incomplete modules. Keep coordinating agents until every module is complete.")
		}
		if snap.VerificationLoopsRemaining > 0 {
			return block(
				fmt.Sprintf("%d verification loop(s) remaining", snap.VerificationLoopsRemaining),
				"All modules are complete but verification loops remain. Run the remaining loops before stopping.")
		}
		return allow("all modules complete, no verification loops remaining")

	default:
		// Unknown governance configuration: fail open.
		if snap.Phase == "" {
			return allow("no governed phase set")
		}
		return allow(fmt.Sprintf("unrecognized phase %q", snap.Phase))
	}
}

func allow(reason string) Decision {
	return Decision{Decision: DecisionAllow, Reason: reason}
}

func block(reason, guidance string) Decision {
	return Decision{
		Decision:      DecisionBlock,
		Reason:        reason,
		SystemMessage: guidance,
		UserMessage:   "Stop blocked: " + reason,
	}
}
