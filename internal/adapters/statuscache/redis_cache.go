// Package statuscache mirrors the latest taxi snapshots into Redis so
// other services can read current positions without querying the scheduler.
package statuscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taxi-geofence-service/internal/domain"
)

// RedisStatusCache keeps one JSON document per taxi under taxi_status_{id}.
// Entries expire on their own; every tick refreshes them.
type RedisStatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStatusCache(rdb *redis.Client, ttl time.Duration) *RedisStatusCache {
	return &RedisStatusCache{rdb: rdb, ttl: ttl}
}

func statusKey(taxiID string) string {
	return "taxi_status_" + taxiID
}

func (c *RedisStatusCache) PublishStatus(ctx context.Context, snap domain.TaxiSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("status cache: marshal snapshot for %q: %w", snap.TaxiID, err)
	}

	if err := c.rdb.Set(ctx, statusKey(snap.TaxiID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("status cache: set %q: %w", statusKey(snap.TaxiID), err)
	}

	return nil
}

func (c *RedisStatusCache) GetStatus(ctx context.Context, taxiID string) (domain.TaxiSnapshot, bool, error) {
	b, err := c.rdb.Get(ctx, statusKey(taxiID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.TaxiSnapshot{}, false, nil
	}
	if err != nil {
		return domain.TaxiSnapshot{}, false, fmt.Errorf("status cache: get %q: %w", statusKey(taxiID), err)
	}

	var snap domain.TaxiSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return domain.TaxiSnapshot{}, false, fmt.Errorf("status cache: decode %q: %w", statusKey(taxiID), err)
	}

	return snap, true, nil
}
