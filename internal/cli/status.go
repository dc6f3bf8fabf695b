package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the orchestration state at a glance",
		Long: `Display the current orchestration state: phase, module ledger, registered
agents and active assignments, plus the stop-gate verdict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			modules, err := wire.ModuleService().ListModules(ctx)
			if err != nil {
				fmt.Println("Warden Status - No Context")
				fmt.Println()
				fmt.Printf("No readable orchestration state: %v\n", err)
				fmt.Println()
				fmt.Println("Run `warden init` to set up a new orchestration.")
				return nil //nolint:nilerr // missing state is intentionally not an error
			}

			fmt.Println("Warden Status")
			fmt.Println()

			fmt.Println("Modules:")
			if len(modules) == 0 {
				fmt.Println("  (none)")
			}
			for _, m := range modules {
				line := fmt.Sprintf("  %s %s [%s]", moduleStatusLabel(m.Status), m.ID, m.Priority)
				if m.AssignedTo != "" {
					line += color.New(color.FgCyan).Sprintf(" → %s", m.AssignedTo)
				}
				fmt.Println(line)
			}
			fmt.Println()

			agents, err := wire.AgentService().ListAgents(ctx)
			if err == nil {
				fmt.Println("Agents:")
				if len(agents) == 0 {
					fmt.Println("  (none)")
				}
				for _, a := range agents {
					fmt.Printf("  %s %s (%s)\n", agentStatusLabel(a.Status), a.ID, a.Kind)
				}
				fmt.Println()
			}

			assignments, err := wire.AssignmentService().ListAssignments(ctx)
			if err == nil && len(assignments) > 0 {
				fmt.Println("Active assignments:")
				for _, a := range assignments {
					fmt.Printf("  %s: %s → %s [%s, verification %s, polls %d]\n",
						a.TaskUUID, a.ModuleID, a.AgentID, a.Status, a.Verification.Status, a.Polling.PollCount)
				}
				fmt.Println()
			}

			d := wire.GateService().Decide(ctx)
			if d.Blocked() {
				fmt.Printf("Gate: %s\n", color.New(color.FgYellow).Sprintf("✗ blocked - %s", d.Reason))
			} else {
				fmt.Printf("Gate: %s\n", color.New(color.FgHiGreen).Sprintf("✓ allow - %s", d.Reason))
			}

			return nil
		},
	}
}

func moduleStatusLabel(status string) string {
	switch status {
	case models.ModuleStatusComplete, models.ModuleStatusDone:
		return color.New(color.FgHiGreen).Sprint("[complete]")
	case models.ModuleStatusInProgress:
		return color.New(color.FgHiBlue).Sprint("[in_progress]")
	case models.ModuleStatusAssigned:
		return color.New(color.FgHiYellow).Sprint("[assigned]")
	default:
		return color.New(color.FgHiBlack).Sprintf("[%s]", status)
	}
}

func agentStatusLabel(status string) string {
	switch status {
	case models.AgentStatusAvailable:
		return color.New(color.FgHiGreen).Sprint("[available]")
	case models.AgentStatusBusy:
		return color.New(color.FgHiBlue).Sprint("[busy]")
	case models.AgentStatusUnverified:
		return color.New(color.FgYellow).Sprint("[unverified]")
	default:
		return fmt.Sprintf("[%s]", status)
	}
}
