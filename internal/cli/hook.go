package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/wire"
)

// HookCmd returns the hook command - parent for Claude Code hook handlers
func HookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook <event>",
		Short: "Handle Claude Code hook events",
		Long: `Process Claude Code hook events.

This command is called by Claude Code hooks and reads event data from stdin.
Each event has a specific handler subcommand.

Available events:
  Stop    - Called when Claude wants to stop the session

Example:
  echo '{"session_id":"abc"}' | warden hook Stop`,
	}

	cmd.AddCommand(hookStopCmd())

	return cmd
}

// StopHookEvent represents the JSON payload from Claude Code Stop hook
type StopHookEvent struct {
	StopHookActive bool   `json:"stop_hook_active"`
	Cwd            string `json:"cwd"`
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
}

// StopHookResponse represents the JSON response to block a stop
type StopHookResponse struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

func hookStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "Stop",
		Short: "Handle Stop event",
		Long:  "Called when Claude wants to stop. Blocks while orchestration has incomplete work.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHookStop()
		},
	}
}

// runHookStop evaluates the stop gate for a hook invocation. Every failure
// path returns nil: a hook that errors would stall the session, so bad
// input, missing config and unreadable state all allow the stop.
func runHookStop() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil //nolint:nilerr // intentional fail-open design
	}

	var event StopHookEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil //nolint:nilerr // intentional fail-open design
	}

	// stop_hook_active means we already blocked once this stop; allowing
	// here prevents an infinite block loop.
	if event.StopHookActive {
		return nil
	}

	// Resolve config and state relative to the session's cwd, not wherever
	// the hook binary happened to start.
	if event.Cwd != "" {
		_ = os.Chdir(event.Cwd)
	}

	d := wire.GateService().Decide(context.Background())
	if !d.Blocked() {
		return nil
	}

	reason := d.SystemMessage
	if reason == "" {
		reason = d.Reason
	}
	response := StopHookResponse{
		Decision: "block",
		Reason:   reason,
	}

	// Output JSON response (exit 0 with output = block)
	output, _ := json.Marshal(response)
	fmt.Fprintln(os.Stdout, string(output))

	return nil
}
