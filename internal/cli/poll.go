package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/core/schedule"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/wire"
)

// PollCmd returns the poll command
func PollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Record and schedule assignment status checks",
	}

	cmd.AddCommand(pollRecordCmd())
	cmd.AddCommand(pollDueCmd())

	return cmd
}

func pollRecordCmd() *cobra.Command {
	var issues string

	cmd := &cobra.Command{
		Use:   "record [task-uuid] [status]",
		Short: "Record a status check against an assignment",
		Long: `Record one status check. The poll counter and history advance together
and the next due time is scheduled from now. Polling a completed assignment
is a no-op.

Examples:
  warden poll record task-ab12 "implementing handlers"
  warden poll record task-ab12 "blocked on schema" --issues "migration conflict"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.PollService().RecordPoll(context.Background(), primary.RecordPollRequest{
				TaskUUID: args[0],
				Status:   args[1],
				Issues:   issues,
			})
			if err != nil {
				return err
			}

			if resp.Skipped {
				fmt.Printf("Assignment %s is already done; nothing recorded.\n", args[0])
				return nil
			}

			p := resp.Assignment.Polling
			fmt.Printf("✓ Recorded poll #%d for %s\n", resp.Entry.PollNumber, resp.Assignment.TaskUUID)
			fmt.Printf("  Next poll due: %s\n", p.NextPollDue)
			return nil
		},
	}

	cmd.Flags().StringVar(&issues, "issues", "", "issues reported by the agent")

	return cmd
}

func pollDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "Show which assignments need a status check",
		Long: `Classify every in-flight assignment against the polling schedule,
most urgent first: never polled, overdue, due soon, on time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := wire.PollService().DueAssignments(context.Background())
			if err != nil {
				return fmt.Errorf("failed to classify assignments: %w", err)
			}

			if len(due) == 0 {
				fmt.Println("No in-flight assignments to poll.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "TASK\tMODULE\tAGENT\tSTATE\tDETAIL")
			fmt.Fprintln(w, "----\t------\t-----\t-----\t------")

			for _, c := range due {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					c.TaskUUID,
					c.ModuleID,
					c.AgentID,
					dueState(c),
					c.Reason,
				)
			}

			w.Flush()
			return nil
		},
	}
}

func dueState(c schedule.Classification) string {
	switch c.Kind {
	case schedule.KindNeverPolled:
		return "never polled"
	case schedule.KindOverdue:
		return fmt.Sprintf("overdue %.0fm", c.MinutesOver)
	case schedule.KindDueSoon:
		return fmt.Sprintf("due in %.0fm", c.MinutesUntil)
	default:
		return "on time"
	}
}
