package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/diesel-reports/internal/infra/config"
)

// ErrNoDSN is returned when no connection string is configured.
var ErrNoDSN = errors.New("postgres dsn not set")

const pingTimeout = 5 * time.Second

// Connect opens a pool and pings it, retrying the ping with exponential backoff.
// A malformed DSN fails immediately.
func Connect(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrNoDSN
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	attempt := 0
	operation := func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			logger.Warn("postgres ping failed", "attempt", attempt, "error", err)
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	if cfg.ConnectBackoff > 0 {
		bo.InitialInterval = cfg.ConnectBackoff
	}
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, cfg.ConnectRetries), ctx)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
