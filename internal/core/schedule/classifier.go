// Package schedule classifies in-flight assignments against their polling
// schedule. Classification is pure: it reads timestamps from the assignment
// and a caller-supplied clock, and never touches storage or collaborators.
package schedule

import (
	"sort"
	"time"

	"github.com/example/warden/internal/models"
)

// Default polling policy.
const (
	DefaultPollIntervalMinutes  = 15
	DefaultWarningWindowMinutes = 10
)

// Classification kinds.
const (
	KindOnTime      = "on_time"
	KindDueSoon     = "due_soon"
	KindOverdue     = "overdue"
	KindNeverPolled = "never_polled"
)

// Classification describes one in-flight assignment's polling state.
type Classification struct {
	TaskUUID     string  `json:"task_uuid"`
	ModuleID     string  `json:"module_id"`
	AgentID      string  `json:"agent_id"`
	Kind         string  `json:"kind"`
	MinutesOver  float64 `json:"minutes_over,omitempty"`
	MinutesUntil float64 `json:"minutes_until,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// Policy holds the interval and warning window used for classification.
type Policy struct {
	Interval      time.Duration
	WarningWindow time.Duration
}

// DefaultPolicy returns the standard 15-minute interval / 10-minute warning
// window policy.
func DefaultPolicy() Policy {
	return Policy{
		Interval:      DefaultPollIntervalMinutes * time.Minute,
		WarningWindow: DefaultWarningWindowMinutes * time.Minute,
	}
}

// Classify evaluates one assignment. The second return is false when the
// assignment is not in flight (such assignments are skipped entirely, not
// reported).
func (p Policy) Classify(a *models.Assignment, now time.Time) (Classification, bool) {
	if !a.InFlight() {
		return Classification{}, false
	}

	c := Classification{
		TaskUUID: a.TaskUUID,
		ModuleID: a.ModuleID,
		AgentID:  a.AgentID,
	}

	if a.Polling.LastPoll == "" {
		c.Kind = KindNeverPolled
		c.Reason = "assignment has never been polled"
		return c, true
	}

	due, err := p.dueTime(a)
	if err != nil {
		c.Kind = KindOverdue
		c.Reason = "malformed poll timestamp: " + err.Error()
		return c, true
	}

	delta := now.Sub(due)
	switch {
	case delta > 0:
		c.Kind = KindOverdue
		c.MinutesOver = delta.Minutes()
	case -delta < p.WarningWindow:
		c.Kind = KindDueSoon
		c.MinutesUntil = (-delta).Minutes()
	default:
		c.Kind = KindOnTime
	}
	return c, true
}

// ClassifySnapshot classifies every in-flight assignment in the snapshot,
// sorted most urgent first: never-polled, then overdue by minutes over,
// then due-soon by minutes until, then on-time.
func (p Policy) ClassifySnapshot(snap *models.Snapshot, now time.Time) []Classification {
	var out []Classification
	for _, a := range snap.ActiveAssignments {
		if c, ok := p.Classify(a, now); ok {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := urgencyRank(out[i].Kind), urgencyRank(out[j].Kind)
		if ri != rj {
			return ri < rj
		}
		switch out[i].Kind {
		case KindOverdue:
			return out[i].MinutesOver > out[j].MinutesOver
		case KindDueSoon:
			return out[i].MinutesUntil < out[j].MinutesUntil
		}
		return false
	})
	return out
}

func urgencyRank(kind string) int {
	switch kind {
	case KindNeverPolled:
		return 0
	case KindOverdue:
		return 1
	case KindDueSoon:
		return 2
	default:
		return 3
	}
}

func (p Policy) dueTime(a *models.Assignment) (time.Time, error) {
	if a.Polling.NextPollDue != "" {
		return ParseTimestamp(a.Polling.NextPollDue)
	}
	last, err := ParseTimestamp(a.Polling.LastPoll)
	if err != nil {
		return time.Time{}, err
	}
	return last.Add(p.Interval), nil
}

// timestampLayouts are the accepted representations, tried in order.
// Everything is normalized to UTC before comparison.
var timestampLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a stored timestamp and normalizes it to UTC.
// Layouts without a zone suffix are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
