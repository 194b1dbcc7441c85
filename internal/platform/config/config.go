// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig         `koanf:"server"`
	Log       LogConfig            `koanf:"log"`
	Telemetry TelemetryConfig      `koanf:"telemetry"`
	Database  DatabaseConfig       `koanf:"database"`
	Breaker   CircuitBreakerConfig `koanf:"breaker"`
	Locking   LockingConfig        `koanf:"locking"`
	Import    ImportConfig         `koanf:"import"`
	RateLimit RateLimitConfig      `koanf:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and tunes the deal store engine.
type DatabaseConfig struct {
	Driver string `koanf:"driver"`
	// Path is the SQLite database file. Empty selects the user data dir.
	Path string `koanf:"path"`
	// URL is the PostgreSQL connection string.
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// CircuitBreakerConfig holds circuit breaker settings for storage calls.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// Supported stage lock backends.
const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

// LockingConfig selects how per-stage mutual exclusion is provided.
type LockingConfig struct {
	Backend     string        `koanf:"backend"`
	WaitTimeout time.Duration `koanf:"wait_timeout"`
	RedisURL    string        `koanf:"redis_url"`
	LeaseTTL    time.Duration `koanf:"lease_ttl"`
	KeyPrefix   string        `koanf:"key_prefix"`
}

// Duplicate id policies for bulk import.
const (
	DuplicateReject = "reject"
	DuplicateSkip   = "skip"
)

// ImportConfig holds bulk import settings.
type ImportConfig struct {
	DuplicatePolicy string `koanf:"duplicate_policy"`
	MaxBatch        int    `koanf:"max_batch"`
}

// RateLimitConfig throttles write requests. RequestsPerSecond <= 0 disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}
