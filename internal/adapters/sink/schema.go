package sink

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the trace_events table if it does not exist. The DDL
// sticks to types shared by sqlite and postgres so either driver can back
// the sink.
func InitSchema(db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS trace_events (
		id TEXT PRIMARY KEY,
		taxi_id TEXT NOT NULL,
		region_name TEXT NOT NULL,
		event_type TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		event_time TEXT NOT NULL
	);`

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("init schema: create trace_events: %w", err)
	}

	const idx = `
	CREATE INDEX IF NOT EXISTS idx_trace_events_taxi
	ON trace_events (taxi_id, event_time);`

	if _, err := db.Exec(idx); err != nil {
		return fmt.Errorf("init schema: index trace_events: %w", err)
	}

	return nil
}
