// Package testutil provides shared helpers for repository and service
// tests. The helpers run against an in-memory SQLite database so the
// suite needs no running Postgres; the repositories bind their queries
// through sqlx.Rebind, so the same SQL runs on both drivers.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Column decltypes matter here: the sqlite driver converts values whose
// declared type contains DATE or TIME into time.Time, which the entity
// scanners rely on.
const schema = `
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE TABLE tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    deadline DATE,
    priority TEXT NOT NULL DEFAULT 'medium',
    status TEXT NOT NULL DEFAULT 'pending',
    owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE INDEX idx_tasks_owner_id ON tasks(owner_id);

CREATE TABLE notifications (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
    message TEXT NOT NULL,
    sent_at DATETIME NOT NULL,
    read BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE UNIQUE INDEX idx_notifications_task_id ON notifications(task_id);
`

// NewTestDB creates an in-memory database with the full schema applied.
// It automatically closes the database when the test completes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	sqlx.BindDriver("sqlite", sqlx.QUESTION)

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// The in-memory database vanishes when its last connection closes;
	// a single connection also sidesteps table locking.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("applying schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	return db
}
