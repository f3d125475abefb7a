package ports

import (
	"context"

	"taxi-geofence-service/internal/domain"
)

// Port: a shared cache mirroring the latest snapshot per taxi so other
// services can read positions without touching the scheduler. Writes are
// best effort; the in-process snapshot map remains the source of truth.
type StatusCache interface {
	PublishStatus(ctx context.Context, snap domain.TaxiSnapshot) error

	// Return the cached snapshot for a taxi; ok is false on a cache miss.
	GetStatus(ctx context.Context, taxiID string) (snap domain.TaxiSnapshot, ok bool, err error)
}
