// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the event-log table. Safe to call multiple times -
// uses IF NOT EXISTS. The ledger state itself is in-memory; only the
// notification log is persisted.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Notification log. Append-only: rows are never updated or deleted.
-- Timestamps are unix seconds so the same DDL works on postgres and sqlite.
CREATE TABLE IF NOT EXISTS event (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL CHECK (kind IN ('poll_created', 'credential_issued', 'vote_cast')),
    poll_id INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    amount INTEGER NOT NULL DEFAULT 0,
    option_label TEXT NOT NULL DEFAULT '',
    deadline INTEGER NOT NULL DEFAULT 0,
    occurred_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_poll_id ON event(poll_id);
CREATE INDEX IF NOT EXISTS idx_event_kind ON event(kind);
CREATE INDEX IF NOT EXISTS idx_event_occurred_at ON event(occurred_at);
`
