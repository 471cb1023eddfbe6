package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// maxTopUnits is the largest efficiency ranking the dashboard may return.
const maxTopUnits = 10

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Reports  ReportsConfig  `yaml:"reports"`
	Postgres PostgresConfig `yaml:"postgres"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	AllowedOrigins  []string        `yaml:"allowedOrigins"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ReportsConfig tunes the report pipeline.
type ReportsConfig struct {
	QueryTimeout time.Duration `yaml:"queryTimeout"`
	TopUnits     int           `yaml:"topUnits"`
	ViewTTL      time.Duration `yaml:"viewTtl"`
}

// PostgresConfig contains DSN and pooling settings for the report store.
type PostgresConfig struct {
	DSN            string        `yaml:"dsn"`
	MaxConns       int32         `yaml:"maxConns"`
	MinConns       int32         `yaml:"minConns"`
	ConnectRetries uint64        `yaml:"connectRetries"`
	ConnectBackoff time.Duration `yaml:"connectBackoff"`
}

// CatalogConfig controls caching of the city and tank lookups.
type CatalogConfig struct {
	CacheTTL time.Duration `yaml:"cacheTtl"`
	Valkey   ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LogConfig selects the minimum log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("REPORTS_QUERY_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Reports.QueryTimeout = parsed
		}
	}
	if v := os.Getenv("REPORTS_TOP_UNITS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Reports.TopUnits = parsed
		}
	}
	if v := os.Getenv("REPORTS_VIEW_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Reports.ViewTTL = parsed
		}
	}
	if v := os.Getenv("DIESEL_POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("DIESEL_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("DIESEL_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("DIESEL_POSTGRES_CONNECT_RETRIES"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Postgres.ConnectRetries = parsed
		}
	}
	if v := os.Getenv("CATALOG_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.CacheTTL = parsed
		}
	}
	if v := os.Getenv("CATALOG_VALKEY_ENABLED"); v != "" {
		cfg.Catalog.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("CATALOG_VALKEY_ADDR"); v != "" {
		cfg.Catalog.Valkey.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Default returns the baseline configuration before file and env overrides.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Reports: ReportsConfig{
			QueryTimeout: 15 * time.Second,
			TopUnits:     10,
			ViewTTL:      30 * time.Minute,
		},
		Postgres: PostgresConfig{
			DSN:            "",
			MaxConns:       8,
			MinConns:       0,
			ConnectRetries: 3,
			ConnectBackoff: 500 * time.Millisecond,
		},
		Catalog: CatalogConfig{
			CacheTTL: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Reports.QueryTimeout <= 0 {
		return errors.New("reports.queryTimeout must be positive")
	}
	if c.Reports.TopUnits <= 0 || c.Reports.TopUnits > maxTopUnits {
		return fmt.Errorf("reports.topUnits must be between 1 and %d", maxTopUnits)
	}
	if c.Reports.ViewTTL < 0 {
		return errors.New("reports.viewTtl cannot be negative")
	}
	if c.Postgres.MaxConns < 0 || c.Postgres.MinConns < 0 {
		return errors.New("postgres pool sizes cannot be negative")
	}
	if c.Postgres.MaxConns > 0 && c.Postgres.MinConns > c.Postgres.MaxConns {
		return errors.New("postgres.minConns cannot exceed postgres.maxConns")
	}
	if c.Catalog.CacheTTL < 0 {
		return errors.New("catalog.cacheTtl cannot be negative")
	}
	if c.Catalog.Valkey.Enabled && strings.TrimSpace(c.Catalog.Valkey.Addr) == "" {
		return errors.New("catalog.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
