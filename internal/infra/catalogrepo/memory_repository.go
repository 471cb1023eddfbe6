package catalogrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
)

// MemoryRepository is an in-memory catalog.Repository used for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	cities []catalog.City
	tanks  []catalog.Tank
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// AddCity seeds a city.
func (r *MemoryRepository) AddCity(city catalog.City) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cities = append(r.cities, city)
}

// AddTank seeds a tank.
func (r *MemoryRepository) AddTank(tank catalog.Tank) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tanks = append(r.tanks, tank)
}

// ListCities implements catalog.Repository.
func (r *MemoryRepository) ListCities(_ context.Context) ([]catalog.City, error) {
	r.mu.RLock()
	out := append([]catalog.City{}, r.cities...)
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	return out, nil
}

// ListTanksByCity implements catalog.Repository.
func (r *MemoryRepository) ListTanksByCity(_ context.Context, cityCode string) ([]catalog.Tank, error) {
	r.mu.RLock()
	out := make([]catalog.Tank, 0)
	for _, t := range r.tanks {
		if t.CityCode == cityCode {
			out = append(out, t)
		}
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ catalog.Repository = (*MemoryRepository)(nil)
