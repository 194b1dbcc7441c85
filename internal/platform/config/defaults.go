package config

const (
	defaultServerPort = 4000

	defaultSQLiteMaxOpenConns = 1
	defaultMaxIdleConns       = 10

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultImportMaxBatch = 1000
	defaultRateLimitBurst = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "deal-pipeline",

		"database.driver":            DriverSQLite,
		"database.path":              "",
		"database.url":               "",
		"database.max_open_conns":    defaultSQLiteMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",

		"breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"breaker.timeout":         "30s",
		"breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"locking.backend":      LockBackendLocal,
		"locking.wait_timeout": "2s",
		"locking.redis_url":    "",
		"locking.lease_ttl":    "10s",
		"locking.key_prefix":   "pipeline:stage-lock:",

		"import.duplicate_policy": DuplicateReject,
		"import.max_batch":        defaultImportMaxBatch,

		"rate_limit.requests_per_second": 0,
		"rate_limit.burst_size":          defaultRateLimitBurst,
	}
}
