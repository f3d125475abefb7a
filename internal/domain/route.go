package domain

import "errors"

// RoutePoint is a pickup or dropoff location anchored to a named region.
type RoutePoint struct {
	RegionName string
	RegionAbbr string
	Latitude   float64
	Longitude  float64
}

// Route is one pickup->dropoff leg of a taxi's itinerary.
// DistanceKM is precomputed configuration input and is authoritative for
// progress-rate calculations; it is never recomputed from the coordinates.
type Route struct {
	Pickup     RoutePoint
	Dropoff    RoutePoint
	DistanceKM float64
}

func (r Route) Validate() error {
	if r.Pickup.RegionName == "" || r.Dropoff.RegionName == "" {
		return errors.New("route: pickup and dropoff must name a region")
	}
	if r.DistanceKM < 0 {
		return errors.New("route: distance must not be negative")
	}
	return nil
}
