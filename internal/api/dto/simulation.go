package dto

import (
	"time"

	"taxi-geofence-service/internal/domain"
)

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RouteResponse struct {
	PickupRegion  string  `json:"pickup_region"`
	DropoffRegion string  `json:"dropoff_region"`
	DistanceKM    float64 `json:"distance_km"`
}

type TaxiStatusResponse struct {
	TaxiID          string        `json:"taxi_id"`
	CurrentPosition Position      `json:"current_position"`
	Destination     Position      `json:"destination"`
	SpeedKMH        float64       `json:"speed_kmh"`
	Status          string        `json:"status"`
	CurrentZone     string        `json:"current_zone"`
	PreviousZone    string        `json:"previous_zone"`
	RouteProgress   float64       `json:"route_progress"`
	RouteIndex      int           `json:"route_index"`
	CurrentRoute    RouteResponse `json:"current_route"`
	LastUpdate      time.Time     `json:"last_update"`
}

// FromSnapshot maps a published snapshot onto the wire shape.
func FromSnapshot(snap domain.TaxiSnapshot) TaxiStatusResponse {
	return TaxiStatusResponse{
		TaxiID:          snap.TaxiID,
		CurrentPosition: Position{Latitude: snap.Latitude, Longitude: snap.Longitude},
		Destination:     Position{Latitude: snap.DestinationLat, Longitude: snap.DestinationLng},
		SpeedKMH:        snap.SpeedKMH,
		Status:          string(snap.Status),
		CurrentZone:     snap.CurrentRegion,
		PreviousZone:    snap.PreviousRegion,
		RouteProgress:   snap.RouteProgress,
		RouteIndex:      snap.RouteIndex,
		CurrentRoute: RouteResponse{
			PickupRegion:  snap.Route.PickupRegion,
			DropoffRegion: snap.Route.DropoffRegion,
			DistanceKM:    snap.Route.DistanceKM,
		},
		LastUpdate: snap.LastTick,
	}
}

type SimulationDetails struct {
	TaxiCount           int     `json:"taxi_count"`
	TickIntervalSeconds float64 `json:"tick_interval_seconds"`
}

type SimulationStateResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Details *SimulationDetails `json:"details,omitempty"`
}

type ListStatusResponse struct {
	Taxis map[string]TaxiStatusResponse `json:"taxis"`
}

type SearchResponse struct {
	Zone  string               `json:"zone"`
	Taxis []TaxiStatusResponse `json:"taxis"`
}
