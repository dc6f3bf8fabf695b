package primary

import (
	"context"

	"github.com/example/warden/internal/models"
)

// ModuleService defines the primary port for module ledger operations.
type ModuleService interface {
	// AddModule creates a module (ID derived from the name) and opens a
	// tracker issue for it best-effort.
	AddModule(ctx context.Context, req AddModuleRequest) (*AddModuleResponse, error)

	// ModifyModule applies the provided fields to a module. Completed
	// modules are immutable.
	ModifyModule(ctx context.Context, req ModifyModuleRequest) (*ModifyModuleResponse, error)

	// RemoveModule removes a module, its assignments, and best-effort closes
	// its tracker issue.
	RemoveModule(ctx context.Context, req RemoveModuleRequest) (*RemoveModuleResponse, error)

	// ListModules returns the module ledger in document order.
	ListModules(ctx context.Context) ([]*models.Module, error)
}

// AddModuleRequest contains parameters for creating a module.
type AddModuleRequest struct {
	Name     string
	Criteria string
	Priority string
}

// AddModuleResponse contains the result of creating a module.
type AddModuleResponse struct {
	Module *models.Module
	// TrackerWarning is set when the tracker issue could not be created.
	TrackerWarning string
}

// ModifyModuleRequest contains the fields to update. Empty fields are left
// unchanged.
type ModifyModuleRequest struct {
	ModuleID string
	Name     string
	Criteria string
	Priority string
}

// ModifyModuleResponse contains the result of modifying a module.
type ModifyModuleResponse struct {
	Module *models.Module
	// RenotifyAdvisory is set when the module is currently assigned and the
	// owning agent should be renotified of the change.
	RenotifyAdvisory string
}

// RemoveModuleRequest contains parameters for removing a module.
type RemoveModuleRequest struct {
	ModuleID string
	Force    bool
}

// RemoveModuleResponse contains the result of removing a module.
type RemoveModuleResponse struct {
	Removed *models.Module
	// RemovedAssignments counts purged assignments referencing the module.
	RemovedAssignments int
	// TrackerWarning is set when the tracker issue could not be closed.
	TrackerWarning string
}
