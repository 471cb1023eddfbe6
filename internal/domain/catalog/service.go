package catalog

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
	"github.com/yanqian/diesel-reports/pkg/metrics"
)

// Service exposes the lookups used to build report filters.
type Service interface {
	Cities(ctx context.Context) ([]City, error)
	Tanks(ctx context.Context, cityCode string) ([]Tank, error)
}

type service struct {
	cfg    Config
	repo   Repository
	store  Store
	logger *slog.Logger
}

// NewService wires up the catalog domain.
func NewService(cfg Config, repo Repository, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		store:  store,
		logger: logger.With("component", "catalog.service"),
	}
}

func (s *service) Cities(ctx context.Context) ([]City, error) {
	cached, ok, err := s.store.GetCities(ctx)
	if err != nil {
		s.logger.Warn("catalog cache read failed", "catalog", "cities", "error", err)
	}
	if ok {
		metrics.CatalogCacheLookups.WithLabelValues("cities", "hit").Inc()
		return cached, nil
	}
	metrics.CatalogCacheLookups.WithLabelValues("cities", "miss").Inc()

	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalog, "failed to load cities", err)
	}
	if cities == nil {
		cities = []City{}
	}
	if err := s.store.SaveCities(ctx, cities, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("catalog cache save failed", "catalog", "cities", "error", err)
	}
	return cities, nil
}

func (s *service) Tanks(ctx context.Context, cityCode string) ([]Tank, error) {
	city := strings.TrimSpace(cityCode)
	if city == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "city code cannot be empty", nil)
	}

	cached, ok, err := s.store.GetTanks(ctx, city)
	if err != nil {
		s.logger.Warn("catalog cache read failed", "catalog", "tanks", "city", city, "error", err)
	}
	if ok {
		metrics.CatalogCacheLookups.WithLabelValues("tanks", "hit").Inc()
		return cached, nil
	}
	metrics.CatalogCacheLookups.WithLabelValues("tanks", "miss").Inc()

	tanks, err := s.repo.ListTanksByCity(ctx, city)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalog, "failed to load tanks", err)
	}
	if tanks == nil {
		tanks = []Tank{}
	}
	if err := s.store.SaveTanks(ctx, city, tanks, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("catalog cache save failed", "catalog", "tanks", "city", city, "error", err)
	}
	return tanks, nil
}
