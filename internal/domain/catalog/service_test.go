package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

func TestCitiesCacheAside(t *testing.T) {
	repo := &stubRepo{cities: []City{{ID: 1, Code: "MTY", Description: "Monterrey"}}}
	store := newMapStore()
	svc := NewService(Config{CacheTTL: time.Minute}, repo, store, newTestLogger())

	first, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Equal(t, repo.cities, first)

	second, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, repo.cityCalls)
	require.Equal(t, time.Minute, store.lastTTL)
}

func TestTanksPerCity(t *testing.T) {
	repo := &stubRepo{tanks: map[string][]Tank{
		"MTY": {{ID: 3, Name: "Tanque Norte", CityCode: "MTY"}},
	}}
	svc := NewService(Config{}, repo, newMapStore(), newTestLogger())

	tanks, err := svc.Tanks(context.Background(), " MTY ")
	require.NoError(t, err)
	require.Len(t, tanks, 1)

	empty, err := svc.Tanks(context.Background(), "GDL")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = svc.Tanks(context.Background(), "  ")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestCacheFailuresFallBackToRepository(t *testing.T) {
	repo := &stubRepo{cities: []City{{ID: 1, Code: "MTY"}}}
	store := newMapStore()
	store.err = errors.New("valkey down")
	svc := NewService(Config{}, repo, store, newTestLogger())

	cities, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 1)
}

func TestRepositoryFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("relation \"Ciudad\" does not exist")}
	svc := NewService(Config{}, repo, newMapStore(), newTestLogger())

	_, err := svc.Cities(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodeCatalog))
	_, err = svc.Tanks(context.Background(), "MTY")
	require.True(t, apperrors.IsCode(err, apperrors.CodeCatalog))
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubRepo struct {
	cities    []City
	tanks     map[string][]Tank
	err       error
	cityCalls int
}

func (r *stubRepo) ListCities(context.Context) ([]City, error) {
	r.cityCalls++
	return r.cities, r.err
}

func (r *stubRepo) ListTanksByCity(_ context.Context, cityCode string) ([]Tank, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tanks[cityCode], nil
}

type mapStore struct {
	cities  []City
	tanks   map[string][]Tank
	err     error
	lastTTL time.Duration
}

func newMapStore() *mapStore {
	return &mapStore{tanks: make(map[string][]Tank)}
}

func (m *mapStore) GetCities(context.Context) ([]City, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	return m.cities, m.cities != nil, nil
}

func (m *mapStore) SaveCities(_ context.Context, cities []City, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.cities = cities
	m.lastTTL = ttl
	return nil
}

func (m *mapStore) GetTanks(_ context.Context, cityCode string) ([]Tank, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	tanks, ok := m.tanks[cityCode]
	return tanks, ok, nil
}

func (m *mapStore) SaveTanks(_ context.Context, cityCode string, tanks []Tank, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.tanks[cityCode] = tanks
	m.lastTTL = ttl
	return nil
}
