package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EventKind distinguishes region entry from exit.
type EventKind string

const (
	EventEntry EventKind = "entry"
	EventExit  EventKind = "exit"
)

// TraceEvent records one region boundary crossing. An event is created,
// handed to the sink once, and not referenced afterwards.
type TraceEvent struct {
	ID         string
	TaxiID     string
	RegionName string
	Kind       EventKind
	Latitude   float64
	Longitude  float64
	Timestamp  time.Time
}

// NewTraceEvent validates the fields and assigns the composite document ID
// used by the trace store: taxi, region slug, kind and millisecond timestamp.
func NewTraceEvent(taxiID, regionName string, kind EventKind, lat, lng float64, ts time.Time) (TraceEvent, error) {
	if taxiID == "" {
		return TraceEvent{}, errors.New("trace event: taxi id must be non-empty")
	}
	if regionName == "" {
		return TraceEvent{}, errors.New("trace event: region name must be non-empty")
	}
	if kind != EventEntry && kind != EventExit {
		return TraceEvent{}, fmt.Errorf("trace event: unknown kind %q", kind)
	}

	slug := strings.ReplaceAll(strings.ToLower(regionName), " ", "_")
	return TraceEvent{
		ID:         fmt.Sprintf("%s_%s_%s_%d", taxiID, slug, kind, ts.UnixMilli()),
		TaxiID:     taxiID,
		RegionName: regionName,
		Kind:       kind,
		Latitude:   lat,
		Longitude:  lng,
		Timestamp:  ts,
	}, nil
}
