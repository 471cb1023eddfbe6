package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
	"github.com/yanqian/diesel-reports/internal/domain/report"
	"github.com/yanqian/diesel-reports/internal/infra/catalogrepo"
	"github.com/yanqian/diesel-reports/internal/infra/catalogstore"
	"github.com/yanqian/diesel-reports/internal/infra/config"
	"github.com/yanqian/diesel-reports/internal/infra/postgres"
	"github.com/yanqian/diesel-reports/internal/infra/reportrepo"
)

func provideReportConfig(cfg *config.Config) report.Config {
	return report.Config{
		QueryTimeout: cfg.Reports.QueryTimeout,
		TopUnits:     cfg.Reports.TopUnits,
		ViewTTL:      cfg.Reports.ViewTTL,
	}
}

func provideCatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{CacheTTL: cfg.Catalog.CacheTTL}
}

// providePostgresPool returns a nil pool when Postgres is not configured or not reachable,
// which selects the memory adapters below.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func()) {
	pool, err := postgres.Connect(context.Background(), cfg.Postgres, logger)
	if err != nil {
		if errors.Is(err, postgres.ErrNoDSN) {
			logger.Warn("postgres dsn not set, using memory adapters")
		} else {
			logger.Error("postgres unavailable, using memory adapters", "error", err)
		}
		return nil, func() {}
	}
	logger.Info("postgres report store enabled")
	return pool, pool.Close
}

func provideQueryClient(pool *pgxpool.Pool, logger *slog.Logger) report.QueryClient {
	if pool == nil {
		logger.Warn("report queries served from an empty in-memory store, dashboards will report no data until postgres.dsn is set")
		return reportrepo.NewInstrumentedClient(reportrepo.NewMemoryClient())
	}
	return reportrepo.NewInstrumentedClient(reportrepo.NewPostgresClient(pool))
}

func provideCatalogRepository(pool *pgxpool.Pool) catalog.Repository {
	if pool == nil {
		return catalogrepo.NewMemoryRepository()
	}
	return catalogrepo.NewPostgresRepository(pool)
}

func provideCatalogStore(cfg *config.Config, logger *slog.Logger) catalog.Store {
	if cfg.Catalog.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return catalogstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return catalogstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("catalog valkey store enabled", "addr", cfg.Catalog.Valkey.Addr)
			return catalogstore.NewValkeyStore(client, "diesel:catalog")
		}
	}
	return catalogstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Catalog.Valkey.Addr, "://") {
		return valkey.ParseURL(cfg.Catalog.Valkey.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Catalog.Valkey.Addr}}, nil
}
