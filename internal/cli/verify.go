package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/wire"
)

// VerifyCmd returns the verify command
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Drive the instruction-verification handshake",
		Long: `Every assignment starts in pending_verification: the agent must restate
its instructions, and the orchestrator must judge the repetition before the
agent is authorized to begin work.`,
	}

	cmd.AddCommand(verifyRepeatCmd())
	cmd.AddCommand(verifyAuthorizeCmd())

	return cmd
}

func verifyRepeatCmd() *cobra.Command {
	var incorrect bool

	cmd := &cobra.Command{
		Use:   "repeat [task-uuid]",
		Short: "Record the agent's instruction repetition",
		Long: `Record that the agent restated its instructions. With --incorrect the
repetition is judged wrong immediately: a correction is requested from the
agent and one verification loop is counted against the module.

Examples:
  warden verify repeat task-ab12
  warden verify repeat task-ab12 --incorrect`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.VerificationService().RecordRepetition(context.Background(), primary.RecordRepetitionRequest{
				TaskUUID:  args[0],
				Incorrect: incorrect,
			})
			if err != nil {
				return err
			}

			v := resp.Assignment.Verification
			if incorrect {
				fmt.Printf("✓ Correction requested for %s (loop %d)\n", resp.Assignment.TaskUUID, v.QuestionsAsked)
			} else {
				fmt.Printf("✓ Repetition recorded for %s; authorize with:\n", resp.Assignment.TaskUUID)
				fmt.Printf("  warden verify authorize %s\n", resp.Assignment.TaskUUID)
			}
			if resp.NotifyWarning != "" {
				fmt.Printf("⚠ %s\n", resp.NotifyWarning)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&incorrect, "incorrect", false, "judge the repetition wrong and request a correction")

	return cmd
}

func verifyAuthorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authorize [task-uuid]",
		Short: "Authorize the agent to begin work",
		Long: `Mark the received repetition correct and authorize the agent to start
implementation. Requires a recorded repetition.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.VerificationService().Authorize(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Authorized %s at %s\n", resp.Assignment.TaskUUID, resp.Assignment.Verification.AuthorizedAt)
			if resp.NotifyWarning != "" {
				fmt.Printf("⚠ %s\n", resp.NotifyWarning)
			}
			return nil
		},
	}
}
