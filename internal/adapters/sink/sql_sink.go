// Package sink persists region transition events through database/sql.
package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taxi-geofence-service/internal/domain"
	"taxi-geofence-service/internal/platform/obs"
)

// SQLTraceSink stores trace events in the trace_events table. It implements
// both the TraceEventSink and TraceEventReader ports.
type SQLTraceSink struct {
	DB *sql.DB
}

// storedTimeLayout keeps the fraction fixed-width so the stored text sorts
// lexicographically by time. RFC3339Nano trims trailing zeros, which would
// put a whole-second timestamp after a later fractional one under ORDER BY.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func NewSQLTraceSink(db *sql.DB) *SQLTraceSink {
	return &SQLTraceSink{DB: db}
}

// StoreTraceEvent inserts one event and returns its document ID. Duplicate
// IDs (a replayed event) are ignored rather than treated as failures.
func (s *SQLTraceSink) StoreTraceEvent(ctx context.Context, ev domain.TraceEvent) (_ string, err error) {
	defer obs.Time(ctx, "sink.StoreTraceEvent")(&err)

	if s.DB == nil {
		return "", errors.New("trace sink: db is nil")
	}
	if ev.ID == "" {
		return "", errors.New("store trace event: event id must be non-empty")
	}

	const q = `
	INSERT INTO trace_events (id, taxi_id, region_name, event_type, latitude, longitude, event_time)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING;`

	_, err = s.DB.ExecContext(ctx, q,
		ev.ID,
		ev.TaxiID,
		ev.RegionName,
		string(ev.Kind),
		ev.Latitude,
		ev.Longitude,
		ev.Timestamp.UTC().Format(storedTimeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("store trace event: insert %q: %w", ev.ID, err)
	}

	return ev.ID, nil
}

// ListTraceEvents returns up to limit events for one taxi, newest first.
func (s *SQLTraceSink) ListTraceEvents(ctx context.Context, taxiID string, limit int) (_ []domain.TraceEvent, err error) {
	defer obs.Time(ctx, "sink.ListTraceEvents")(&err)

	if s.DB == nil {
		return nil, errors.New("trace sink: db is nil")
	}
	if taxiID == "" {
		return nil, errors.New("list trace events: taxi id must be non-empty")
	}
	if limit <= 0 {
		limit = 50
	}

	// The id tiebreak pins the order of events sharing a timestamp, such as
	// the exit/entry pair of a single transition.
	const q = `
	SELECT id, taxi_id, region_name, event_type, latitude, longitude, event_time
	FROM trace_events
	WHERE taxi_id = $1
	ORDER BY event_time DESC, id DESC
	LIMIT $2;`

	rows, err := s.DB.QueryContext(ctx, q, taxiID, limit)
	if err != nil {
		return nil, fmt.Errorf("list trace events: query trace_events: %w", err)
	}
	defer rows.Close()

	var out []domain.TraceEvent
	for rows.Next() {
		var ev domain.TraceEvent
		var kind, rawTime string
		if err := rows.Scan(&ev.ID, &ev.TaxiID, &ev.RegionName, &kind, &ev.Latitude, &ev.Longitude, &rawTime); err != nil {
			return nil, fmt.Errorf("list trace events: scan rows: %w", err)
		}

		ev.Kind = domain.EventKind(kind)
		ev.Timestamp, err = time.Parse(time.RFC3339Nano, rawTime)
		if err != nil {
			return nil, fmt.Errorf("list trace events: parse event_time %q: %w", rawTime, err)
		}

		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trace events: row iteration: %w", err)
	}

	return out, nil
}
