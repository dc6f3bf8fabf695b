package db

// SchemaSQL is the complete schema for a fresh warden install.
//
// This is the single source of truth for the ledger schema. Tests load it via
// GetSchemaSQL() so test and production schemas cannot drift. When adding
// columns or tables, add a migration in migrations.go and update this schema
// to match.
const SchemaSQL = `
-- Gate events (one row per stop-gate decision)
CREATE TABLE IF NOT EXISTS gate_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	decision TEXT NOT NULL CHECK(decision IN ('allow', 'block')),
	reason TEXT,
	phase TEXT,
	incomplete_count INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Poll events (one row per recorded status check)
CREATE TABLE IF NOT EXISTS poll_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_uuid TEXT NOT NULL,
	module_id TEXT NOT NULL,
	agent_id TEXT NOT NULL,
	poll_number INTEGER NOT NULL,
	status TEXT NOT NULL,
	issues TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_poll_events_task ON poll_events(task_uuid);
CREATE INDEX IF NOT EXISTS idx_gate_events_created ON gate_events(created_at);
`

// InitSchema creates the schema on a fresh install, or runs pending
// migrations on an existing one.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
	}

	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema for test databases.
func GetSchemaSQL() string {
	return SchemaSQL
}
