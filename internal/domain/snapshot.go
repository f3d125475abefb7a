package domain

import "time"

// RouteView is the read-only description of the leg a snapshot was taken on.
type RouteView struct {
	PickupRegion  string  `json:"pickup_region"`
	DropoffRegion string  `json:"dropoff_region"`
	DistanceKM    float64 `json:"distance_km"`
}

// TaxiSnapshot is an immutable, fully computed copy of a taxi's observable
// state, published once per tick. Readers never observe a partially updated
// taxi because snapshots are swapped in whole after the tick finishes.
type TaxiSnapshot struct {
	TaxiID         string     `json:"taxi_id"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	DestinationLat float64    `json:"destination_lat"`
	DestinationLng float64    `json:"destination_lng"`
	SpeedKMH       float64    `json:"speed_kmh"`
	Status         TaxiStatus `json:"status"`
	CurrentRegion  string     `json:"current_region"`
	PreviousRegion string     `json:"previous_region"`
	RouteProgress  float64    `json:"route_progress"`
	RouteIndex     int        `json:"route_index"`
	Route          RouteView  `json:"current_route"`
	LastTick       time.Time  `json:"last_tick"`
}

// Snapshot copies the taxi's observable fields by value.
func (t *Taxi) Snapshot() TaxiSnapshot {
	r := t.CurrentRoute()
	return TaxiSnapshot{
		TaxiID:         t.ID,
		Latitude:       t.CurrentLat,
		Longitude:      t.CurrentLng,
		DestinationLat: t.DestinationLat,
		DestinationLng: t.DestinationLng,
		SpeedKMH:       t.SpeedKMH,
		Status:         t.Status,
		CurrentRegion:  t.CurrentRegion,
		PreviousRegion: t.PreviousRegion,
		RouteProgress:  t.RouteProgress,
		RouteIndex:     t.RouteIndex,
		Route: RouteView{
			PickupRegion:  r.Pickup.RegionName,
			DropoffRegion: r.Dropoff.RegionName,
			DistanceKM:    r.DistanceKM,
		},
		LastTick: t.LastTick,
	}
}
