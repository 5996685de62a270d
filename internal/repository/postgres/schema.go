package postgres

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS guests (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS guests_email_key
	ON guests (email) WHERE email IS NOT NULL;

CREATE TABLE IF NOT EXISTS attendance_sessions (
	id UUID PRIMARY KEY,
	guest_id UUID NOT NULL REFERENCES guests (id) ON DELETE CASCADE,
	entered_at TIMESTAMPTZ NOT NULL,
	left_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS attendance_sessions_guest_entered_idx
	ON attendance_sessions (guest_id, entered_at DESC);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Safe to run at every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
