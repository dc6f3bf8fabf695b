package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/wire"
)

// GateCmd returns the gate command
func GateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Evaluate the stop-gate policy",
		Long: `Evaluate whether the orchestrator may stop right now.

Exit codes:
  0  stop allowed
  2  stop blocked (incomplete modules or remaining verification loops)

Absent or unreadable orchestration state allows the stop: governance must
never deadlock automation. Scripts should branch on the exit code; --json
prints the full decision for programmatic use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := wire.GateService().Decide(context.Background())

			if asJSON {
				output, err := json.Marshal(d)
				if err != nil {
					return fmt.Errorf("failed to encode decision: %w", err)
				}
				fmt.Println(string(output))
			} else if d.Blocked() {
				fmt.Printf("✗ Stop blocked: %s\n", d.Reason)
			} else {
				fmt.Printf("✓ Stop allowed: %s\n", d.Reason)
			}

			if d.Blocked() {
				os.Exit(2)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decision as JSON")

	return cmd
}
