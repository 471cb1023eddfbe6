package catalog

import (
	"context"
	"time"
)

// Store caches catalog lookups.
type Store interface {
	GetCities(ctx context.Context) ([]City, bool, error)
	SaveCities(ctx context.Context, cities []City, ttl time.Duration) error
	GetTanks(ctx context.Context, cityCode string) ([]Tank, bool, error)
	SaveTanks(ctx context.Context, cityCode string, tanks []Tank, ttl time.Duration) error
}
