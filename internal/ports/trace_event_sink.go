package ports

import (
	"context"

	"taxi-geofence-service/internal/domain"
)

// Port: a boundary for persisting boundary-crossing events.
//
// Delivery is best effort. Callers log a failure and move on; the in-memory
// region transition is authoritative even when the event never made it to
// storage.
type TraceEventSink interface {
	// Persist one event and return its document ID.
	StoreTraceEvent(ctx context.Context, ev domain.TraceEvent) (string, error)
}

// Port: read access to stored trace events for the API layer.
type TraceEventReader interface {
	// Return up to limit most recent events for one taxi, newest first.
	ListTraceEvents(ctx context.Context, taxiID string, limit int) ([]domain.TraceEvent, error)
}
