package catalogstore

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
)

const citiesKey = "cities"

// MemoryStore is an in-process catalog.Store. A zero ttl keeps entries until the
// process exits.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore constructs a store backed by go-cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (s *MemoryStore) GetCities(_ context.Context) ([]catalog.City, bool, error) {
	v, ok := s.cache.Get(citiesKey)
	if !ok {
		return nil, false, nil
	}
	return append([]catalog.City{}, v.([]catalog.City)...), true, nil
}

func (s *MemoryStore) SaveCities(_ context.Context, cities []catalog.City, ttl time.Duration) error {
	s.cache.Set(citiesKey, append([]catalog.City{}, cities...), expiration(ttl))
	return nil
}

func (s *MemoryStore) GetTanks(_ context.Context, cityCode string) ([]catalog.Tank, bool, error) {
	v, ok := s.cache.Get(tanksKey(cityCode))
	if !ok {
		return nil, false, nil
	}
	return append([]catalog.Tank{}, v.([]catalog.Tank)...), true, nil
}

func (s *MemoryStore) SaveTanks(_ context.Context, cityCode string, tanks []catalog.Tank, ttl time.Duration) error {
	s.cache.Set(tanksKey(cityCode), append([]catalog.Tank{}, tanks...), expiration(ttl))
	return nil
}

func tanksKey(cityCode string) string {
	return "tanks:" + cityCode
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return cache.NoExpiration
	}
	return ttl
}

var _ catalog.Store = (*MemoryStore)(nil)
