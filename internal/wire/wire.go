// Package wire provides dependency injection for the warden application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/example/warden/internal/adapters/messaging"
	"github.com/example/warden/internal/adapters/sqlite"
	"github.com/example/warden/internal/adapters/statefile"
	"github.com/example/warden/internal/adapters/tracker"
	"github.com/example/warden/internal/app"
	"github.com/example/warden/internal/config"
	"github.com/example/warden/internal/core/schedule"
	"github.com/example/warden/internal/db"
	"github.com/example/warden/internal/ports/primary"
	"github.com/example/warden/internal/ports/secondary"
)

var (
	agentService        primary.AgentService
	moduleService       primary.ModuleService
	assignmentService   primary.AssignmentService
	pollService         primary.PollService
	verificationService primary.VerificationService
	gateService         primary.GateService
	auditService        primary.AuditService
	once                sync.Once
)

// AgentService returns the singleton AgentService instance.
func AgentService() primary.AgentService {
	once.Do(initServices)
	return agentService
}

// ModuleService returns the singleton ModuleService instance.
func ModuleService() primary.ModuleService {
	once.Do(initServices)
	return moduleService
}

// AssignmentService returns the singleton AssignmentService instance.
func AssignmentService() primary.AssignmentService {
	once.Do(initServices)
	return assignmentService
}

// PollService returns the singleton PollService instance.
func PollService() primary.PollService {
	once.Do(initServices)
	return pollService
}

// VerificationService returns the singleton VerificationService instance.
func VerificationService() primary.VerificationService {
	once.Do(initServices)
	return verificationService
}

// GateService returns the singleton GateService instance.
func GateService() primary.GateService {
	once.Do(initServices)
	return gateService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}
	cfg := config.LoadOrDefault(cwd)

	store := statefile.NewStore(cfg.StateFile)
	messenger := messaging.NewHTTPMessenger(cfg.MessagingEndpoint, time.Duration(cfg.TimeoutSeconds)*time.Second)
	issueTracker := tracker.NewGHTracker(cfg.TrackerRepo, cfg.TrackerOwner)

	// The audit ledger is supplemental: if the database cannot be opened the
	// services run without it rather than failing the command.
	var auditRepo secondary.AuditRepository
	if database, err := db.GetDB(); err == nil {
		auditRepo = sqlite.NewAuditRepository(database)
	}

	policy := schedule.Policy{
		Interval:      time.Duration(cfg.PollIntervalMinutes) * time.Minute,
		WarningWindow: time.Duration(cfg.WarningWindowMinutes) * time.Minute,
	}

	agentService = app.NewAgentService(store, messenger)
	moduleService = app.NewModuleService(store, issueTracker)
	assignmentService = app.NewAssignmentService(store, messenger)
	pollService = app.NewPollService(store, auditRepo, policy)
	verificationService = app.NewVerificationService(store, messenger)
	gateService = app.NewGateService(store, auditRepo)
	auditService = app.NewAuditService(auditRepo)
}
