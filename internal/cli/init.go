package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/warden/internal/adapters/statefile"
	"github.com/example/warden/internal/config"
	"github.com/example/warden/internal/models"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var stateFile, endpoint, repo, project string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize warden in the current directory",
		Long: `Write .warden/config.json and seed the orchestration state document.

An existing state document is left untouched; a fresh one starts in the
plan phase with an empty module ledger.

Examples:
  warden init
  warden init --state-file docs/orchestration_state.md --tracker-repo example/warden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg := &config.Config{
				Version:           "1",
				StateFile:         stateFile,
				MessagingEndpoint: endpoint,
				TrackerRepo:       repo,
				TrackerProject:    project,
			}
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}
			fmt.Println("✓ Wrote .warden/config.json")

			loaded := config.LoadOrDefault(cwd)
			store := statefile.NewStore(loaded.StateFile)
			ctx := context.Background()

			_, found, loadErr := store.Load(ctx)
			if found || loadErr != nil {
				fmt.Printf("  State document %s already exists; left untouched.\n", loaded.StateFile)
				return nil
			}

			seed := &models.Snapshot{
				Phase:             models.PhasePlan,
				ModulesStatus:     []*models.Module{},
				ActiveAssignments: []*models.Assignment{},
				RegisteredAgents: models.AgentRegistry{
					AIAgents:        []*models.Agent{},
					HumanDevelopers: []*models.Agent{},
				},
			}
			if err := store.Save(ctx, seed); err != nil {
				return fmt.Errorf("failed to seed state document: %w", err)
			}
			fmt.Printf("✓ Seeded %s (plan phase)\n", loaded.StateFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&stateFile, "state-file", "", "path to the orchestration state document")
	cmd.Flags().StringVar(&endpoint, "messaging-endpoint", "", "base URL of the agent messaging service")
	cmd.Flags().StringVar(&repo, "tracker-repo", "", "owner/name for tracker issues")
	cmd.Flags().StringVar(&project, "tracker-project", "", "tracker project number")

	return cmd
}
