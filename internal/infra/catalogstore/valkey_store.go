package catalogstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
)

// ValkeyStore caches catalog lookups in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "catalog"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetCities(ctx context.Context) ([]catalog.City, bool, error) {
	var cities []catalog.City
	ok, err := s.getJSON(ctx, s.citiesKey(), &cities)
	return cities, ok, err
}

func (s *ValkeyStore) SaveCities(ctx context.Context, cities []catalog.City, ttl time.Duration) error {
	return s.setJSON(ctx, s.citiesKey(), cities, ttl)
}

func (s *ValkeyStore) GetTanks(ctx context.Context, cityCode string) ([]catalog.Tank, bool, error) {
	var tanks []catalog.Tank
	ok, err := s.getJSON(ctx, s.tanksKey(cityCode), &tanks)
	return tanks, ok, err
}

func (s *ValkeyStore) SaveTanks(ctx context.Context, cityCode string, tanks []catalog.Tank, ttl time.Duration) error {
	return s.setJSON(ctx, s.tanksKey(cityCode), tanks, ttl)
}

func (s *ValkeyStore) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ValkeyStore) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(key).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) citiesKey() string {
	return fmt.Sprintf("%s:cities", s.prefix)
}

func (s *ValkeyStore) tanksKey(cityCode string) string {
	return fmt.Sprintf("%s:tanks:%s", s.prefix, cityCode)
}

var _ catalog.Store = (*ValkeyStore)(nil)
