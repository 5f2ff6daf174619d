package pg

import (
	"context"
)

const createCallHistoryTable = `
CREATE TABLE IF NOT EXISTS call_history (
	id                SERIAL PRIMARY KEY,
	date              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	endpoint          VARCHAR(255) NOT NULL,
	parameters        TEXT,
	response_or_error VARCHAR(1000)
);
`

// Migrate создаёт таблицу call_history, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createCallHistoryTable)
	return err
}
