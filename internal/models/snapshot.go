package models

// Phase constants for the orchestration snapshot.
const (
	PhasePlan          = "plan"
	PhaseOrchestration = "orchestration"
)

// Snapshot is the root orchestration state document. It is reloaded from
// durable storage on every command invocation; nothing caches it in memory
// across invocations.
type Snapshot struct {
	Phase                      string        `yaml:"phase,omitempty" json:"phase,omitempty"`
	PlanPhaseComplete          bool          `yaml:"plan_phase_complete" json:"plan_phase_complete"`
	ModulesStatus              []*Module     `yaml:"modules_status" json:"modules_status"`
	RegisteredAgents           AgentRegistry `yaml:"registered_agents" json:"registered_agents"`
	ActiveAssignments          []*Assignment `yaml:"active_assignments" json:"active_assignments"`
	AssignmentHistory          []*Assignment `yaml:"assignment_history,omitempty" json:"assignment_history,omitempty"`
	VerificationLoopsRemaining int           `yaml:"verification_loops_remaining" json:"verification_loops_remaining"`
}

// FindModule returns the module with the given ID, or nil.
func (s *Snapshot) FindModule(id string) *Module {
	for _, m := range s.ModulesStatus {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// FindAssignment returns the active assignment with the given task UUID, or nil.
func (s *Snapshot) FindAssignment(taskUUID string) *Assignment {
	for _, a := range s.ActiveAssignments {
		if a.TaskUUID == taskUUID {
			return a
		}
	}
	return nil
}

// FindAssignmentForModule returns the active assignment for a module, or nil.
// At most one active assignment exists per module.
func (s *Snapshot) FindAssignmentForModule(moduleID string) *Assignment {
	for _, a := range s.ActiveAssignments {
		if a.ModuleID == moduleID {
			return a
		}
	}
	return nil
}

// RemoveAssignmentsForModule drops every active assignment referencing the
// module and returns the removed assignments.
func (s *Snapshot) RemoveAssignmentsForModule(moduleID string) []*Assignment {
	var kept, removed []*Assignment
	for _, a := range s.ActiveAssignments {
		if a.ModuleID == moduleID {
			removed = append(removed, a)
		} else {
			kept = append(kept, a)
		}
	}
	s.ActiveAssignments = kept
	return removed
}

// RemoveModule drops the module with the given ID. Returns false if absent.
func (s *Snapshot) RemoveModule(id string) bool {
	for i, m := range s.ModulesStatus {
		if m.ID == id {
			s.ModulesStatus = append(s.ModulesStatus[:i], s.ModulesStatus[i+1:]...)
			return true
		}
	}
	return false
}

// IncompleteModules returns the modules whose status is not terminal.
func (s *Snapshot) IncompleteModules() []*Module {
	var out []*Module
	for _, m := range s.ModulesStatus {
		if !m.Completed() {
			out = append(out, m)
		}
	}
	return out
}
