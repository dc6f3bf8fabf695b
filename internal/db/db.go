// Package db manages the SQLite connection for the audit ledger. The ledger
// is supplemental: orchestration state lives in the state document, the
// ledger only accumulates gate decisions and recorded polls for review.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

var dbInitialized bool

// GetDB returns the ledger connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	wardenDir, err := Dir()
	if err != nil {
		return nil, err
	}
	dbPath := filepath.Join(wardenDir, "warden.db")

	if err := os.MkdirAll(wardenDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .warden directory: %w", err)
	}

	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations on first connection (but avoid recursion)
	if !dbInitialized {
		dbInitialized = true
		if err := InitSchema(); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return db, nil
}

// Close closes the ledger connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Dir returns the warden state directory (~/.warden)
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".warden"), nil
}

// GetDBPath returns the path to the ledger file
func GetDBPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "warden.db"), nil
}
