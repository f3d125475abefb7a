package domain

import (
	"errors"
	"fmt"
	"time"
)

// TaxiStatus describes what a taxi is currently doing.
type TaxiStatus string

// StatusEnroute is the only travel status: a taxi is always driving a leg.
// Completing a route moves it straight onto the next pickup, so there is no
// idle or loading phase.
const StatusEnroute TaxiStatus = "enroute"

// Taxi is the mutable simulation state for one vehicle.
//
// A Taxi is written only by the scheduler's worker goroutine; concurrent
// readers are served immutable TaxiSnapshot copies instead.
type Taxi struct {
	ID             string
	CurrentLat     float64
	CurrentLng     float64
	DestinationLat float64
	DestinationLng float64
	SpeedKMH       float64
	Status         TaxiStatus
	Routes         []Route
	RouteIndex     int
	RouteProgress  float64
	CurrentRegion  string // maintained by the transition tracker, never the simulator
	PreviousRegion string
	LastTick       time.Time
}

// NewTaxi validates the route list and places the taxi at the pickup of its
// first route.
func NewTaxi(id string, routes []Route, speedKMH float64, now time.Time) (*Taxi, error) {
	if id == "" {
		return nil, errors.New("new taxi: id must be non-empty")
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("new taxi: taxi %q needs at least one route", id)
	}
	for i, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("new taxi: taxi %q route %d: %w", id, i, err)
		}
	}
	if speedKMH <= 0 {
		return nil, fmt.Errorf("new taxi: taxi %q speed must be positive, got %v", id, speedKMH)
	}

	first := routes[0]
	return &Taxi{
		ID:             id,
		CurrentLat:     first.Pickup.Latitude,
		CurrentLng:     first.Pickup.Longitude,
		DestinationLat: first.Dropoff.Latitude,
		DestinationLng: first.Dropoff.Longitude,
		SpeedKMH:       speedKMH,
		Status:         StatusEnroute,
		Routes:         routes,
		RouteIndex:     0,
		RouteProgress:  0,
		LastTick:       now,
	}, nil
}

// CurrentRoute returns the leg the taxi is travelling.
func (t *Taxi) CurrentRoute() Route {
	return t.Routes[t.RouteIndex]
}
