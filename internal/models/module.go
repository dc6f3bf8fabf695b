package models

import "strings"

// Module status constants
const (
	ModuleStatusPending    = "pending"
	ModuleStatusPlanned    = "planned"
	ModuleStatusAssigned   = "assigned"
	ModuleStatusInProgress = "in_progress"
	ModuleStatusComplete   = "complete"
	ModuleStatusDone       = "done"
)

// Module priority constants
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Module represents a discrete unit of implementation work.
type Module struct {
	ID                 string `yaml:"id" json:"id"`
	Name               string `yaml:"name" json:"name"`
	Status             string `yaml:"status" json:"status"`
	AssignedTo         string `yaml:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	Priority           string `yaml:"priority,omitempty" json:"priority,omitempty"`
	AcceptanceCriteria string `yaml:"acceptance_criteria,omitempty" json:"acceptance_criteria,omitempty"`
	ExternalTicketRef  string `yaml:"external_ticket_ref,omitempty" json:"external_ticket_ref,omitempty"`
	VerificationLoops  int    `yaml:"verification_loops" json:"verification_loops"`
}

// Completed reports whether the module has reached a terminal status.
// Completed modules are immutable.
func (m *Module) Completed() bool {
	return m.Status == ModuleStatusComplete || m.Status == ModuleStatusDone
}

// Assignable reports whether the module can accept a new assignment.
func (m *Module) Assignable() bool {
	return m.Status == ModuleStatusPending || m.Status == ModuleStatusPlanned
}

// ValidPriority reports whether p is a recognized priority level.
func ValidPriority(p string) bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Slugify derives a module ID from a human name: lowercase, non-alphanumeric
// runs collapsed to a single hyphen, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
