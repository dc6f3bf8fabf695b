package app

import (
	"context"
	"time"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockStateStore implements secondary.StateStore for testing.
type mockStateStore struct {
	snap      *models.Snapshot
	found     bool
	loadErr   error
	saveErr   error
	saved     *models.Snapshot
	saveCount int
}

func (m *mockStateStore) Load(ctx context.Context) (*models.Snapshot, bool, error) {
	return m.snap, m.found, m.loadErr
}

func (m *mockStateStore) Save(ctx context.Context, snap *models.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = snap
	m.saveCount++
	return nil
}

// mockMessenger implements secondary.Messenger for testing.
type mockMessenger struct {
	sent    []secondary.OutboundMessage
	pinged  []string
	sendErr error
	pingErr error
}

func (m *mockMessenger) Send(ctx context.Context, msg secondary.OutboundMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockMessenger) Ping(ctx context.Context, to string) error {
	m.pinged = append(m.pinged, to)
	return m.pingErr
}

// mockTracker implements secondary.IssueTracker for testing.
type mockTracker struct {
	createdTitles []string
	createRef     string
	createErr     error
	closedRefs    []string
	closeErr      error
	items         []secondary.ProjectItem
	listErr       error
}

func (m *mockTracker) CreateIssue(ctx context.Context, title, body string, labels []string) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.createdTitles = append(m.createdTitles, title)
	return m.createRef, nil
}

func (m *mockTracker) CloseIssue(ctx context.Context, ref, comment string) error {
	if m.closeErr != nil {
		return m.closeErr
	}
	m.closedRefs = append(m.closedRefs, ref)
	return nil
}

func (m *mockTracker) ListProjectItems(ctx context.Context, projectID string) ([]secondary.ProjectItem, error) {
	return m.items, m.listErr
}

// mockAuditRepo implements secondary.AuditRepository for testing.
type mockAuditRepo struct {
	gateEvents []*secondary.GateEventRecord
	pollEvents []*secondary.PollEventRecord
	recordErr  error
}

func (m *mockAuditRepo) RecordGateEvent(ctx context.Context, rec *secondary.GateEventRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.gateEvents = append(m.gateEvents, rec)
	return nil
}

func (m *mockAuditRepo) RecordPollEvent(ctx context.Context, rec *secondary.PollEventRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.pollEvents = append(m.pollEvents, rec)
	return nil
}

func (m *mockAuditRepo) ListGateEvents(ctx context.Context, limit int) ([]*secondary.GateEventRecord, error) {
	return m.gateEvents, nil
}

func (m *mockAuditRepo) ListPollEvents(ctx context.Context, limit int) ([]*secondary.PollEventRecord, error) {
	return m.pollEvents, nil
}

// ============================================================================
// Fixtures
// ============================================================================

var testClock = func() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

// testSnapshot builds an orchestration-phase snapshot with one pending
// module, one AI agent, and one human developer.
func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Phase: models.PhaseOrchestration,
		ModulesStatus: []*models.Module{
			{
				ID:                 "auth-core",
				Name:               "Auth Core",
				Status:             models.ModuleStatusPending,
				Priority:           models.PriorityHigh,
				AcceptanceCriteria: "JWT issuance works end to end",
				ExternalTicketRef:  "41",
			},
		},
		RegisteredAgents: models.AgentRegistry{
			AIAgents: []*models.Agent{
				{ID: "impl-1", Kind: models.AgentKindAI, Session: "agent:impl-1", Status: models.AgentStatusAvailable},
			},
			HumanDevelopers: []*models.Agent{
				{ID: "alice", Kind: models.AgentKindHuman, Handle: "alice-gh", Status: models.AgentStatusAvailable},
			},
		},
	}
}

// storeWith wraps a snapshot in a found mock store.
func storeWith(snap *models.Snapshot) *mockStateStore {
	return &mockStateStore{snap: snap, found: true}
}
