package app

import (
	"context"
	"fmt"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

// ModuleServiceImpl implements the ModuleService interface.
type ModuleServiceImpl struct {
	store   secondary.StateStore
	tracker secondary.IssueTracker
}

// NewModuleService creates a new ModuleService with injected dependencies.
func NewModuleService(store secondary.StateStore, tracker secondary.IssueTracker) *ModuleServiceImpl {
	return &ModuleServiceImpl{store: store, tracker: tracker}
}

// AddModule creates a module with a deterministically derived ID and opens a
// tracker issue for it best-effort.
func (s *ModuleServiceImpl) AddModule(ctx context.Context, req primary.AddModuleRequest) (*primary.AddModuleResponse, error) {
	id := models.Slugify(req.Name)
	if id == "" {
		return nil, fmt.Errorf("module name %q yields an empty id", req.Name)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, fmt.Errorf("priority %q: %w", req.Priority, ErrInvalidPriority)
	}

	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	if snap.FindModule(id) != nil {
		return nil, fmt.Errorf("module %s: %w", id, ErrDuplicateModule)
	}

	module := &models.Module{
		ID:                 id,
		Name:               req.Name,
		Status:             models.ModuleStatusPending,
		Priority:           priority,
		AcceptanceCriteria: req.Criteria,
	}

	resp := &primary.AddModuleResponse{Module: module}

	// Tracker issue creation is best-effort: failure is a warning, not an
	// aborted add.
	ref, terr := s.tracker.CreateIssue(ctx, req.Name, req.Criteria, []string{"module"})
	if terr != nil {
		resp.TrackerWarning = fmt.Sprintf("tracker issue not created (%v); create it manually", terr)
	} else {
		module.ExternalTicketRef = ref
	}

	snap.ModulesStatus = append(snap.ModulesStatus, module)

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist module: %w", err)
	}

	return resp, nil
}

// ModifyModule applies the provided fields to a module.
func (s *ModuleServiceImpl) ModifyModule(ctx context.Context, req primary.ModifyModuleRequest) (*primary.ModifyModuleResponse, error) {
	if req.Priority != "" && !models.ValidPriority(req.Priority) {
		return nil, fmt.Errorf("priority %q: %w", req.Priority, ErrInvalidPriority)
	}

	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	module := snap.FindModule(req.ModuleID)
	if module == nil {
		return nil, fmt.Errorf("module %s: %w", req.ModuleID, ErrModuleNotFound)
	}
	if module.Completed() {
		return nil, fmt.Errorf("module %s: %w", req.ModuleID, ErrModuleComplete)
	}

	if req.Name != "" {
		module.Name = req.Name
	}
	if req.Criteria != "" {
		module.AcceptanceCriteria = req.Criteria
	}
	if req.Priority != "" {
		module.Priority = req.Priority
	}

	resp := &primary.ModifyModuleResponse{Module: module}
	if module.AssignedTo != "" {
		// Advisory only: renotification is the operator's call.
		resp.RenotifyAdvisory = fmt.Sprintf("module is assigned to %s; renotify the agent of the change", module.AssignedTo)
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist module change: %w", err)
	}

	return resp, nil
}

// RemoveModule removes a module, purges its assignments, and best-effort
// closes its tracker issue.
func (s *ModuleServiceImpl) RemoveModule(ctx context.Context, req primary.RemoveModuleRequest) (*primary.RemoveModuleResponse, error) {
	snap, err := loadForMutation(ctx, s.store)
	if err != nil {
		return nil, err
	}

	module := snap.FindModule(req.ModuleID)
	if module == nil {
		return nil, fmt.Errorf("module %s: %w", req.ModuleID, ErrModuleNotFound)
	}

	if !req.Force {
		if module.Status == models.ModuleStatusInProgress || module.Completed() {
			return nil, fmt.Errorf("module %s has status %s: %w", module.ID, module.Status, ErrNotRemovable)
		}
		if module.AssignedTo != "" {
			return nil, fmt.Errorf("module %s is assigned to %s: %w", module.ID, module.AssignedTo, ErrNotRemovable)
		}
	}

	removed := snap.RemoveAssignmentsForModule(module.ID)
	for _, a := range removed {
		if agent := snap.RegisteredAgents.Find(a.AgentID); agent != nil && agent.CurrentAssignment == module.ID {
			agent.Status = models.AgentStatusAvailable
			agent.CurrentAssignment = ""
		}
	}
	snap.RemoveModule(module.ID)

	resp := &primary.RemoveModuleResponse{
		Removed:            module,
		RemovedAssignments: len(removed),
	}

	if module.ExternalTicketRef != "" {
		if terr := s.tracker.CloseIssue(ctx, module.ExternalTicketRef, "module removed from orchestration"); terr != nil {
			resp.TrackerWarning = fmt.Sprintf("tracker issue %s not closed (%v); close it manually", module.ExternalTicketRef, terr)
		}
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to persist module removal: %w", err)
	}

	return resp, nil
}

// ListModules returns the module ledger in document order.
func (s *ModuleServiceImpl) ListModules(ctx context.Context) ([]*models.Module, error) {
	snap, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return snap.ModulesStatus, nil
}

// Ensure ModuleServiceImpl implements the interface.
var _ primary.ModuleService = (*ModuleServiceImpl)(nil)
