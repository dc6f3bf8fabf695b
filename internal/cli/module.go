package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/wire"
)

// ModuleCmd returns the module command
func ModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage the module ledger",
		Long:  `Add, modify, remove and list the modules tracked in the orchestration state.`,
	}

	cmd.AddCommand(moduleAddCmd())
	cmd.AddCommand(moduleModifyCmd())
	cmd.AddCommand(moduleRemoveCmd())
	cmd.AddCommand(moduleListCmd())

	return cmd
}

func moduleAddCmd() *cobra.Command {
	var criteria, priority string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a module",
		Long: `Add a module to the ledger. The module ID is derived from the name.
A tracker issue is opened best-effort; a tracker failure records the module
without an external reference and prints a warning.

Examples:
  warden module add "Auth Core" --priority high
  warden module add "Billing" --criteria "invoices render correctly"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.ModuleService().AddModule(context.Background(), primary.AddModuleRequest{
				Name:     args[0],
				Criteria: criteria,
				Priority: priority,
			})
			if err != nil {
				return fmt.Errorf("failed to add module: %w", err)
			}

			fmt.Printf("✓ Added module %s: %s [%s]\n", resp.Module.ID, resp.Module.Name, resp.Module.Priority)
			if resp.Module.ExternalTicketRef != "" {
				fmt.Printf("  Tracker issue: #%s\n", resp.Module.ExternalTicketRef)
			}
			if resp.TrackerWarning != "" {
				fmt.Printf("⚠ %s\n", resp.TrackerWarning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria, "criteria", "", "acceptance criteria")
	cmd.Flags().StringVar(&priority, "priority", "", "priority: critical, high, medium or low (default medium)")

	return cmd
}

func moduleModifyCmd() *cobra.Command {
	var name, criteria, priority string

	cmd := &cobra.Command{
		Use:   "modify [module-id]",
		Short: "Modify a module",
		Long: `Update a module's name, acceptance criteria or priority. Fields not
given are left unchanged. Completed modules are immutable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.ModuleService().ModifyModule(context.Background(), primary.ModifyModuleRequest{
				ModuleID: args[0],
				Name:     name,
				Criteria: criteria,
				Priority: priority,
			})
			if err != nil {
				return fmt.Errorf("failed to modify module: %w", err)
			}

			fmt.Printf("✓ Updated module %s\n", resp.Module.ID)
			if resp.RenotifyAdvisory != "" {
				fmt.Printf("⚠ %s\n", resp.RenotifyAdvisory)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&criteria, "criteria", "", "new acceptance criteria")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority")

	return cmd
}

func moduleRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove [module-id]",
		Short: "Remove a module",
		Long: `Remove a module from the ledger along with its assignments. Assigned,
in-progress or completed modules require --force. The owning agent is
released and the tracker issue is closed best-effort.

Examples:
  warden module remove auth-core
  warden module remove auth-core --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.ModuleService().RemoveModule(context.Background(), primary.RemoveModuleRequest{
				ModuleID: args[0],
				Force:    force,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Removed module %s", resp.Removed.ID)
			if resp.RemovedAssignments > 0 {
				fmt.Printf(" (%d assignment(s) purged)", resp.RemovedAssignments)
			}
			fmt.Println()
			if resp.TrackerWarning != "" {
				fmt.Printf("⚠ %s\n", resp.TrackerWarning)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "remove even if assigned, in progress or complete")

	return cmd
}

func moduleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			modules, err := wire.ModuleService().ListModules(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list modules: %w", err)
			}

			if len(modules) == 0 {
				fmt.Println("No modules in the ledger.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPRIORITY\tASSIGNED TO\tTICKET")
			fmt.Fprintln(w, "--\t----\t------\t--------\t-----------\t------")

			for _, m := range modules {
				ticket := ""
				if m.ExternalTicketRef != "" {
					ticket = "#" + m.ExternalTicketRef
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID,
					m.Name,
					m.Status,
					m.Priority,
					m.AssignedTo,
					ticket,
				)
			}

			w.Flush()
			return nil
		},
	}
}
