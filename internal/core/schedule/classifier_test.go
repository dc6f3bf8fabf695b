package schedule

import (
	"testing"
	"time"

	"github.com/example/warden/internal/models"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func inFlight(lastPoll, nextDue string) *models.Assignment {
	return &models.Assignment{
		TaskUUID: "task-abc123",
		ModuleID: "auth-core",
		AgentID:  "impl-1",
		Status:   models.AssignmentStatusWorking,
		Polling:  models.Polling{LastPoll: lastPoll, NextPollDue: nextDue},
	}
}

func TestClassifySkipsNonInFlight(t *testing.T) {
	p := DefaultPolicy()
	for _, status := range []string{
		models.AssignmentStatusPendingVerification,
		models.AssignmentStatusAuthorized,
		models.AssignmentStatusDone,
	} {
		a := inFlight("", "")
		a.Status = status
		if _, ok := p.Classify(a, now); ok {
			t.Errorf("status %s should be skipped", status)
		}
	}
}

func TestClassifyNeverPolled(t *testing.T) {
	p := DefaultPolicy()
	c, ok := p.Classify(inFlight("", ""), now)
	if !ok || c.Kind != KindNeverPolled {
		t.Errorf("got %+v ok=%v, want never_polled", c, ok)
	}

	// Never-polled is independent of now.
	c, _ = p.Classify(inFlight("", ""), now.Add(-100*time.Hour))
	if c.Kind != KindNeverPolled {
		t.Errorf("got %s, want never_polled regardless of now", c.Kind)
	}
}

func TestClassifyOverdue(t *testing.T) {
	p := DefaultPolicy()

	// Due 20 minutes ago via explicit next_poll_due.
	due := now.Add(-20 * time.Minute).Format(time.RFC3339)
	c, _ := p.Classify(inFlight(now.Add(-35*time.Minute).Format(time.RFC3339), due), now)
	if c.Kind != KindOverdue {
		t.Fatalf("got %s, want overdue", c.Kind)
	}
	if c.MinutesOver < 19.9 || c.MinutesOver > 20.1 {
		t.Errorf("MinutesOver = %v, want ~20", c.MinutesOver)
	}

	// No next_poll_due: derive from last_poll + interval.
	c, _ = p.Classify(inFlight(now.Add(-30*time.Minute).Format(time.RFC3339), ""), now)
	if c.Kind != KindOverdue {
		t.Errorf("got %s, want overdue from last_poll+interval", c.Kind)
	}
}

func TestClassifyDueSoonAndOnTime(t *testing.T) {
	p := DefaultPolicy()

	// Due in 5 minutes: inside the 10-minute warning window.
	c, _ := p.Classify(inFlight(now.Format(time.RFC3339), now.Add(5*time.Minute).Format(time.RFC3339)), now)
	if c.Kind != KindDueSoon {
		t.Fatalf("got %s, want due_soon", c.Kind)
	}
	if c.MinutesUntil < 4.9 || c.MinutesUntil > 5.1 {
		t.Errorf("MinutesUntil = %v, want ~5", c.MinutesUntil)
	}

	// Due in 12 minutes: outside the warning window.
	c, _ = p.Classify(inFlight(now.Format(time.RFC3339), now.Add(12*time.Minute).Format(time.RFC3339)), now)
	if c.Kind != KindOnTime {
		t.Errorf("got %s, want on_time", c.Kind)
	}
}

func TestClassifyMalformedTimestamp(t *testing.T) {
	p := DefaultPolicy()
	c, ok := p.Classify(inFlight("not-a-time", ""), now)
	if !ok || c.Kind != KindOverdue || c.Reason == "" {
		t.Errorf("malformed timestamp should classify overdue with reason, got %+v", c)
	}
}

func TestParseTimestampNormalizesZones(t *testing.T) {
	a, err := ParseTimestamp("2026-03-10T14:00:00+02:00")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseTimestamp("2026-03-10T12:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("zone-suffixed timestamps should compare equal: %v vs %v", a, b)
	}

	c, err := ParseTimestamp("2026-03-10T12:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(b) {
		t.Errorf("zoneless timestamp should be read as UTC: %v", c)
	}
}

func TestClassifySnapshotOrdersMostUrgentFirst(t *testing.T) {
	p := DefaultPolicy()
	snap := &models.Snapshot{
		ActiveAssignments: []*models.Assignment{
			inFlight(now.Format(time.RFC3339), now.Add(5*time.Minute).Format(time.RFC3339)), // due soon
			inFlight(now.Add(-30*time.Minute).Format(time.RFC3339), ""),                     // overdue
			inFlight("", ""), // never polled
			{TaskUUID: "task-done", Status: models.AssignmentStatusDone},
		},
	}

	got := p.ClassifySnapshot(snap, now)
	if len(got) != 3 {
		t.Fatalf("got %d classifications, want 3 (done is skipped)", len(got))
	}
	if got[0].Kind != KindNeverPolled || got[1].Kind != KindOverdue || got[2].Kind != KindDueSoon {
		t.Errorf("wrong order: %s, %s, %s", got[0].Kind, got[1].Kind, got[2].Kind)
	}
}
