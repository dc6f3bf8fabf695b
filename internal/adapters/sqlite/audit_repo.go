// Package sqlite contains the SQLite implementation of the audit ledger.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/warden/internal/ports/secondary"
)

// AuditRepository implements secondary.AuditRepository with SQLite.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new SQLite audit repository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// RecordGateEvent appends one stop-gate decision to the ledger.
func (r *AuditRepository) RecordGateEvent(ctx context.Context, rec *secondary.GateEventRecord) error {
	var reason, phase sql.NullString
	if rec.Reason != "" {
		reason = sql.NullString{String: rec.Reason, Valid: true}
	}
	if rec.Phase != "" {
		phase = sql.NullString{String: rec.Phase, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gate_events (decision, reason, phase, incomplete_count) VALUES (?, ?, ?, ?)`,
		rec.Decision,
		reason,
		phase,
		rec.IncompleteCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record gate event: %w", err)
	}
	return nil
}

// RecordPollEvent appends one status check to the ledger.
func (r *AuditRepository) RecordPollEvent(ctx context.Context, rec *secondary.PollEventRecord) error {
	var issues sql.NullString
	if rec.Issues != "" {
		issues = sql.NullString{String: rec.Issues, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO poll_events (task_uuid, module_id, agent_id, poll_number, status, issues) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.TaskUUID,
		rec.ModuleID,
		rec.AgentID,
		rec.PollNumber,
		rec.Status,
		issues,
	)
	if err != nil {
		return fmt.Errorf("failed to record poll event: %w", err)
	}
	return nil
}

// ListGateEvents retrieves the most recent gate decisions, newest first.
func (r *AuditRepository) ListGateEvents(ctx context.Context, limit int) ([]*secondary.GateEventRecord, error) {
	query := `SELECT id, decision, reason, phase, incomplete_count, created_at FROM gate_events ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gate events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.GateEventRecord
	for rows.Next() {
		var (
			reason    sql.NullString
			phase     sql.NullString
			createdAt time.Time
		)
		rec := &secondary.GateEventRecord{}
		if err := rows.Scan(&rec.ID, &rec.Decision, &reason, &phase, &rec.IncompleteCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan gate event: %w", err)
		}
		rec.Reason = reason.String
		rec.Phase = phase.String
		rec.CreatedAt = createdAt.Format(time.RFC3339)
		events = append(events, rec)
	}
	return events, rows.Err()
}

// ListPollEvents retrieves the most recent poll records, newest first.
func (r *AuditRepository) ListPollEvents(ctx context.Context, limit int) ([]*secondary.PollEventRecord, error) {
	query := `SELECT id, task_uuid, module_id, agent_id, poll_number, status, issues, created_at FROM poll_events ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.PollEventRecord
	for rows.Next() {
		var (
			issues    sql.NullString
			createdAt time.Time
		)
		rec := &secondary.PollEventRecord{}
		if err := rows.Scan(&rec.ID, &rec.TaskUUID, &rec.ModuleID, &rec.AgentID, &rec.PollNumber, &rec.Status, &issues, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll event: %w", err)
		}
		rec.Issues = issues.String
		rec.CreatedAt = createdAt.Format(time.RFC3339)
		events = append(events, rec)
	}
	return events, rows.Err()
}

// Ensure AuditRepository implements the interface
var _ secondary.AuditRepository = (*AuditRepository)(nil)
