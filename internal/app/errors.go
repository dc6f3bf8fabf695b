// Package app implements the primary-port services: the mutation operations
// and policy queries over the orchestration snapshot. Every operation
// reloads the snapshot, computes the full mutation in memory, dispatches any
// best-effort notifications, and persists atomically. Collaborator failures
// never roll back a state mutation.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/secondary"
)

// Validation sentinels. The CLI maps these to exit code 1.
var (
	ErrNoState             = errors.New("no orchestration state found")
	ErrDuplicateAgent      = errors.New("agent already registered")
	ErrMissingSession      = errors.New("ai agents require a session name")
	ErrInvalidKind         = errors.New("agent kind must be ai or human")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrDuplicateModule     = errors.New("module already exists")
	ErrModuleNotFound      = errors.New("module not found")
	ErrModuleNotAssignable = errors.New("module is not assignable")
	ErrAlreadyAssigned     = errors.New("module is already assigned")
	ErrModuleComplete      = errors.New("completed modules are immutable")
	ErrNotAssigned         = errors.New("module is not assigned")
	ErrSameAgent           = errors.New("module is already assigned to that agent")
	ErrNotRemovable        = errors.New("module cannot be removed without force")
	ErrAgentNotFound       = errors.New("agent not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrLedgerUnavailable   = errors.New("audit ledger unavailable")
)

// loadForMutation loads the snapshot for a mutation operation. Unlike the
// fail-open policy reads, a present-but-unreadable document is a hard error
// here: mutating without the true prior state risks silent data loss.
func loadForMutation(ctx context.Context, store secondary.StateStore) (*models.Snapshot, error) {
	snap, found, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("state document unreadable: %w", err)
	}
	if !found {
		return nil, ErrNoState
	}
	return snap, nil
}
