package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [module-id] [agent-id]",
		Short: "Assign a module to an agent",
		Long: `Assign a pending module to a registered agent.

The assignment starts in pending_verification: an AI agent receives the
assignment briefing and must restate its instructions before it is
authorized to start (see "warden verify"). Human developers are assigned
without a message.

Examples:
  warden assign auth-core impl-1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.AssignmentService().AssignModule(context.Background(), primary.AssignModuleRequest{
				ModuleID: args[0],
				AgentID:  args[1],
			})
			if err != nil {
				return err
			}

			a := resp.Assignment
			fmt.Printf("✓ Assigned %s to %s (%s, %s)\n", a.ModuleID, a.AgentID, a.TaskUUID, a.Status)
			if resp.Notified {
				fmt.Println("  Assignment briefing sent; awaiting instruction repetition.")
			}
			if resp.NotifyWarning != "" {
				fmt.Printf("⚠ %s\n", resp.NotifyWarning)
			}
			return nil
		},
	}
}

// ReassignCmd returns the reassign command
func ReassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reassign [module-id] [agent-id]",
		Short: "Move an assigned module to a different agent",
		Long: `Reassign a module to a new agent.

The old AI agent is told to stop work, its assignment is archived to the
history, and a fresh assignment (with a new task UUID and a fresh
verification handshake) is created for the new agent.

Examples:
  warden reassign auth-core impl-2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.AssignmentService().ReassignModule(context.Background(), primary.ReassignModuleRequest{
				ModuleID:   args[0],
				NewAgentID: args[1],
			})
			if err != nil {
				return err
			}

			a := resp.Assignment
			fmt.Printf("✓ Reassigned %s from %s to %s (%s)\n", a.ModuleID, resp.OldAgentID, a.AgentID, a.TaskUUID)
			if resp.StopNotified {
				fmt.Printf("  Stop-work message sent to %s.\n", resp.OldAgentID)
			}
			if resp.Notified {
				fmt.Println("  Assignment briefing sent; awaiting instruction repetition.")
			}
			if resp.NotifyWarning != "" {
				fmt.Printf("⚠ %s\n", resp.NotifyWarning)
			}
			return nil
		},
	}
}
