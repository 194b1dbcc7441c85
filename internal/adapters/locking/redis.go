package locking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

const (
	// retryInterval is the pause between SET NX attempts on a held stage.
	retryInterval = 20 * time.Millisecond

	// releaseTimeout bounds the unlock script, which runs detached from the
	// caller's context.
	releaseTimeout = 2 * time.Second

	connectTimeout = 5 * time.Second
)

// releaseScript deletes the lease only if it still carries our token, so an
// expired lease that another replica has since taken is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Compile-time interface checks.
var (
	_ ports.StageLocker   = (*Redis)(nil)
	_ ports.HealthChecker = (*Redis)(nil)
)

// RedisOptions tunes a Redis locker.
type RedisOptions struct {
	WaitTimeout time.Duration
	// LeaseTTL caps how long a crashed holder can block a stage.
	LeaseTTL  time.Duration
	KeyPrefix string
}

// Redis is a StageLocker shared by every replica connected to the same
// Redis instance.
type Redis struct {
	client *redis.Client
	opts   RedisOptions
	logger *slog.Logger
}

// NewRedisClient parses a redis:// URL and verifies the server is reachable.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// NewRedis creates a Redis locker over an existing client.
func NewRedis(client *redis.Client, opts RedisOptions, logger *slog.Logger) *Redis {
	return &Redis{client: client, opts: opts, logger: logger}
}

func (r *Redis) key(st deal.Stage) string {
	return r.opts.KeyPrefix + string(st)
}

// Lock acquires a lease per stage in board order. Leases already taken are
// released if a later stage cannot be acquired in time.
func (r *Redis) Lock(ctx context.Context, stages ...deal.Stage) (func(), error) {
	if r.opts.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.WaitTimeout)
		defer cancel()
	}

	token := uuid.NewString()
	var held []string
	unlock := func() { r.release(held, token) }

	for _, st := range deal.BoardOrder(stages...) {
		key := r.key(st)
		if err := r.acquire(ctx, key, token); err != nil {
			unlock()
			return nil, fmt.Errorf("stage %s: %w", st, err)
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() { once.Do(unlock) }, nil
}

func (r *Redis) acquire(ctx context.Context, key, token string) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: waiting for lease: %w", domain.ErrConflict, ctx.Err())
		case <-timer.C:
		}

		ok, err := r.client.SetNX(ctx, key, token, r.opts.LeaseTTL).Result()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: waiting for lease: %w", domain.ErrConflict, ctx.Err())
			}
			return fmt.Errorf("%w: acquiring lease: %w", domain.ErrUnavailable, err)
		}
		if ok {
			return nil
		}
		timer.Reset(retryInterval)
	}
}

func (r *Redis) release(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	for i := len(keys) - 1; i >= 0; i-- {
		err := releaseScript.Run(ctx, r.client, []string{keys[i]}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "failed to release stage lease",
				slog.String("key", keys[i]),
				slog.Any("error", err),
			)
		}
	}
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string {
	return "redis"
}

// HealthCheck implements ports.HealthChecker.
func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
