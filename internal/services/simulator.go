package services

import (
	"log"
	"math"
	"math/rand"
	"time"

	"taxi-geofence-service/internal/domain"
)

// RouteSimulator advances taxis along their route legs using elapsed wall
// time and speed. It is a plain state machine over Taxi values: the
// scheduler owns all locking and decides when each method runs.
type RouteSimulator struct {
	speedMinKMH float64
	speedMaxKMH float64
	rng         *rand.Rand
}

// NewRouteSimulator configures the speed band taxis are redrawn from at the
// start of every leg. The seed makes speed draws reproducible in tests.
func NewRouteSimulator(speedMinKMH, speedMaxKMH float64, seed int64) *RouteSimulator {
	return &RouteSimulator{
		speedMinKMH: speedMinKMH,
		speedMaxKMH: speedMaxKMH,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// DrawSpeed samples a cruising speed uniformly from the configured band.
func (s *RouteSimulator) DrawSpeed() float64 {
	return s.speedMinKMH + s.rng.Float64()*(s.speedMaxKMH-s.speedMinKMH)
}

// Tick moves the taxi along its current leg for the elapsed duration and
// reports whether the leg completed.
//
// Progress is clamped at 1.0, so the completing tick is observed exactly at
// the dropoff coordinates; any overshoot distance is discarded, not carried
// into the next leg. Advancing onto the next leg is a separate step
// (AdvanceRoute) so the caller can classify and snapshot the dropoff first.
func (s *RouteSimulator) Tick(taxi *domain.Taxi, elapsed time.Duration) bool {
	route := taxi.CurrentRoute()

	distanceKM := taxi.SpeedKMH / 3600 * elapsed.Seconds()

	// A zero-distance leg completes on its first tick.
	increment := 1.0
	if route.DistanceKM > 0 {
		increment = distanceKM / route.DistanceKM
	}

	taxi.RouteProgress = math.Min(1.0, taxi.RouteProgress+increment)

	taxi.CurrentLat = route.Pickup.Latitude + (route.Dropoff.Latitude-route.Pickup.Latitude)*taxi.RouteProgress
	taxi.CurrentLng = route.Pickup.Longitude + (route.Dropoff.Longitude-route.Pickup.Longitude)*taxi.RouteProgress

	return taxi.RouteProgress >= 1.0
}

// AdvanceRoute wraps the taxi onto its next leg: the route index cycles
// through the assigned list, progress resets to zero, the position teleports
// to the next pickup (no simulated travel between dropoff and pickup) and
// the speed is redrawn.
func (s *RouteSimulator) AdvanceRoute(taxi *domain.Taxi) {
	taxi.RouteIndex = (taxi.RouteIndex + 1) % len(taxi.Routes)
	taxi.RouteProgress = 0

	next := taxi.CurrentRoute()
	taxi.CurrentLat = next.Pickup.Latitude
	taxi.CurrentLng = next.Pickup.Longitude
	taxi.DestinationLat = next.Dropoff.Latitude
	taxi.DestinationLng = next.Dropoff.Longitude
	taxi.SpeedKMH = s.DrawSpeed()

	log.Printf("simulator: taxi=%s starting route index=%d pickup=%q dropoff=%q",
		taxi.ID, taxi.RouteIndex, next.Pickup.RegionName, next.Dropoff.RegionName)
}
