package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Breaker.validate(),
		c.Locking.validate(),
		c.Import.validate(),
		c.RateLimit.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case DriverSQLite:
		if d.MaxOpenConns != 1 {
			errs = append(errs, fmt.Errorf("database.max_open_conns must be 1 for sqlite, got %d", d.MaxOpenConns))
		}
	case DriverPostgres:
		if d.URL == "" {
			errs = append(errs, errors.New("database.url must not be empty when driver is postgres"))
		}
		if d.MaxOpenConns < 1 {
			errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: sqlite, postgres; got %q", d.Driver))
	}

	if d.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_idle_conns must be >= 0, got %d", d.MaxIdleConns))
	}

	return errors.Join(errs...)
}

func (b *CircuitBreakerConfig) validate() error {
	var errs []error

	if b.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("breaker.max_failures must be >= 1, got %d", b.MaxFailures))
	}
	if b.Timeout <= 0 {
		errs = append(errs, errors.New("breaker.timeout must be positive"))
	}
	if b.HalfOpenLimit < 1 {
		errs = append(errs, fmt.Errorf("breaker.half_open_limit must be >= 1, got %d", b.HalfOpenLimit))
	}

	return errors.Join(errs...)
}

func (l *LockingConfig) validate() error {
	var errs []error

	switch l.Backend {
	case LockBackendLocal:
		// No extra settings.
	case LockBackendRedis:
		if l.RedisURL == "" {
			errs = append(errs, errors.New("locking.redis_url must not be empty when backend is redis"))
		}
		if l.LeaseTTL <= 0 {
			errs = append(errs, errors.New("locking.lease_ttl must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("locking.backend must be one of: local, redis; got %q", l.Backend))
	}

	if l.WaitTimeout <= 0 {
		errs = append(errs, errors.New("locking.wait_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (i *ImportConfig) validate() error {
	var errs []error

	switch i.DuplicatePolicy {
	case DuplicateReject, DuplicateSkip:
		// Valid policies.
	default:
		errs = append(errs, fmt.Errorf("import.duplicate_policy must be one of: reject, skip; got %q", i.DuplicatePolicy))
	}
	if i.MaxBatch < 1 {
		errs = append(errs, fmt.Errorf("import.max_batch must be >= 1, got %d", i.MaxBatch))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerSecond <= 0 {
		return nil
	}
	if r.BurstSize < 1 {
		return fmt.Errorf("rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", r.BurstSize)
	}
	return nil
}
