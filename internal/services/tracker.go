package services

import (
	"context"
	"log"
	"time"

	"taxi-geofence-service/internal/domain"
	"taxi-geofence-service/internal/platform/obs"
	"taxi-geofence-service/internal/ports"
)

// ZoneTransitionTracker turns classification changes into entry/exit events
// and forwards them to the trace sink.
type ZoneTransitionTracker struct {
	sink ports.TraceEventSink
}

// NewZoneTransitionTracker builds a tracker. A nil sink is allowed: events
// are still computed and returned, just not persisted.
func NewZoneTransitionTracker(sink ports.TraceEventSink) *ZoneTransitionTracker {
	return &ZoneTransitionTracker{sink: sink}
}

// Update compares the new classification against the remembered region and
// returns the region the caller should persist on the taxi, plus any events
// emitted. An unchanged classification is a no-op. On a change, the exit for
// the old region precedes the entry for the new one; either side is skipped
// when its region is empty.
//
// Sink failures are logged and never block: the returned region is
// authoritative even when persisting the event failed.
func (t *ZoneTransitionTracker) Update(
	ctx context.Context,
	taxiID string,
	classification string,
	previous string,
	lat, lng float64,
	now time.Time,
) (string, []domain.TraceEvent) {
	if classification == previous {
		return previous, nil
	}

	var events []domain.TraceEvent

	if previous != "" {
		if ev, ok := t.emit(ctx, taxiID, previous, domain.EventExit, lat, lng, now); ok {
			events = append(events, ev)
		}
	}
	if classification != "" {
		if ev, ok := t.emit(ctx, taxiID, classification, domain.EventEntry, lat, lng, now); ok {
			events = append(events, ev)
		}
	}

	return classification, events
}

func (t *ZoneTransitionTracker) emit(
	ctx context.Context,
	taxiID, regionName string,
	kind domain.EventKind,
	lat, lng float64,
	now time.Time,
) (domain.TraceEvent, bool) {
	ev, err := domain.NewTraceEvent(taxiID, regionName, kind, lat, lng, now)
	if err != nil {
		log.Printf("tracker: build event failed: taxi=%s kind=%s err=%v", taxiID, kind, err)
		return domain.TraceEvent{}, false
	}

	log.Printf("tracker: taxi=%s %s region=%q", taxiID, kind, regionName)
	obs.TransitionsTotal.WithLabelValues(string(kind)).Inc()

	if t.sink != nil {
		if _, err := t.sink.StoreTraceEvent(ctx, ev); err != nil {
			obs.SinkFailuresTotal.Inc()
			log.Printf("tracker: store trace event failed: taxi=%s kind=%s region=%q err=%v",
				taxiID, kind, regionName, err)
		}
	}

	return ev, true
}
