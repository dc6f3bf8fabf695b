package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/wire"
)

// AuditCmd returns the audit command
func AuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Review the audit ledger",
		Long:  `List recorded stop-gate decisions and status-check polls from the local ledger.`,
	}

	cmd.AddCommand(auditGatesCmd())
	cmd.AddCommand(auditPollsCmd())

	return cmd
}

func auditGatesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "gates",
		Short: "List recorded gate decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := wire.AuditService().ListGateEvents(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list gate events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No gate decisions recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "TIME\tDECISION\tPHASE\tINCOMPLETE\tREASON")
			fmt.Fprintln(w, "----\t--------\t-----\t----------\t------")
			for _, ev := range events {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					ev.CreatedAt,
					ev.Decision,
					ev.Phase,
					ev.IncompleteCount,
					ev.Reason,
				)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of events to show")

	return cmd
}

func auditPollsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "polls",
		Short: "List recorded status checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := wire.AuditService().ListPollEvents(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list poll events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No polls recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "TIME\tTASK\tMODULE\tAGENT\t#\tSTATUS\tISSUES")
			fmt.Fprintln(w, "----\t----\t------\t-----\t-\t------\t------")
			for _, ev := range events {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
					ev.CreatedAt,
					ev.TaskUUID,
					ev.ModuleID,
					ev.AgentID,
					ev.PollNumber,
					ev.Status,
					ev.Issues,
				)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of events to show")

	return cmd
}
