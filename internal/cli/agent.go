package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/wire"
)

// AgentCmd returns the agent command
func AgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage the agent registry",
		Long:  `Register and list the AI agents and human developers available for module assignment.`,
	}

	cmd.AddCommand(agentRegisterCmd())
	cmd.AddCommand(agentListCmd())

	return cmd
}

func agentRegisterCmd() *cobra.Command {
	var kind, session, handle string

	cmd := &cobra.Command{
		Use:   "register [agent-id]",
		Short: "Register an agent",
		Long: `Register an AI agent or human developer.

AI agents require --session (the messaging session they listen on) and are
probed for liveness on registration. An unreachable session registers the
agent as unverified rather than failing.

Examples:
  warden agent register impl-1 --kind ai --session agent:impl-1
  warden agent register alice --kind human --handle alice-gh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.AgentService().RegisterAgent(ctx, primary.RegisterAgentRequest{
				AgentID: args[0],
				Kind:    kind,
				Session: session,
				Handle:  handle,
			})
			if err != nil {
				return fmt.Errorf("failed to register agent: %w", err)
			}

			fmt.Printf("✓ Registered %s agent %s [%s]\n", resp.Agent.Kind, resp.Agent.ID, resp.Agent.Status)
			if resp.ProbeWarning != "" {
				fmt.Printf("⚠ %s\n", resp.ProbeWarning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", models.AgentKindAI, "agent kind: ai or human")
	cmd.Flags().StringVar(&session, "session", "", "messaging session name (AI agents)")
	cmd.Flags().StringVar(&handle, "handle", "", "tracker username (human developers)")

	return cmd
}

func agentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, err := wire.AgentService().ListAgents(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			if len(agents) == 0 {
				fmt.Println("No agents registered.")
				fmt.Println()
				fmt.Println("Register your first agent:")
				fmt.Println("  warden agent register impl-1 --kind ai --session agent:impl-1")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tSTATUS\tASSIGNMENT\tCONTACT")
			fmt.Fprintln(w, "--\t----\t------\t----------\t-------")

			for _, a := range agents {
				contact := a.Session
				if a.Kind == models.AgentKindHuman {
					contact = a.Handle
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.ID,
					a.Kind,
					a.Status,
					a.CurrentAssignment,
					contact,
				)
			}

			w.Flush()
			return nil
		},
	}
}
