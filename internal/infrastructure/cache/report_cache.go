package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/infrastructure/config"
)

// DefaultReportTTL is how long a cached report stays fresh when no TTL is configured.
const DefaultReportTTL = 5 * time.Minute

// RedisReportCache caches rendered report payloads in Redis so that
// repeated dashboard polls do not re-aggregate the transaction tables.
type RedisReportCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisReportCacheOption is a functional option for configuring the cache
type RedisReportCacheOption func(*RedisReportCache)

// WithReportTTL sets how long cached reports stay fresh
func WithReportTTL(ttl time.Duration) RedisReportCacheOption {
	return func(c *RedisReportCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithReportCacheLogger sets the logger for the cache
func WithReportCacheLogger(logger *zap.Logger) RedisReportCacheOption {
	return func(c *RedisReportCache) {
		c.logger = logger
	}
}

// NewRedisReportCache connects to Redis and returns a report cache
func NewRedisReportCache(cfg config.RedisConfig, opts ...RedisReportCacheOption) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisReportCache{
		client:     client,
		ownsClient: true,
		ttl:        DefaultReportTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisReportCacheWithClient creates a cache around an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisReportCacheWithClient(client *redis.Client, opts ...RedisReportCacheOption) *RedisReportCache {
	cache := &RedisReportCache{
		client:     client,
		ownsClient: false,
		ttl:        DefaultReportTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *RedisReportCache) reportKey(name string) string {
	return fmt.Sprintf("report:%s", name)
}

// Get retrieves a cached report into dest. It returns false on a cache
// miss; Redis errors are logged and treated as misses so that reporting
// keeps working when the cache is down.
func (c *RedisReportCache) Get(ctx context.Context, name string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.reportKey(name)).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Report cache miss", zap.String("report", name))
		return false, nil
	}
	if err != nil {
		c.logger.Warn("Failed to read report from cache",
			zap.String("report", name),
			zap.Error(err))
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Failed to decode cached report, discarding",
			zap.String("report", name),
			zap.Error(err))
		_ = c.client.Del(ctx, c.reportKey(name)).Err()
		return false, nil
	}
	return true, nil
}

// Set stores a report payload under the given name
func (c *RedisReportCache) Set(ctx context.Context, name string, report interface{}) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := c.client.Set(ctx, c.reportKey(name), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache report",
			zap.String("report", name),
			zap.Error(err))
		return err
	}
	return nil
}

// Invalidate removes a cached report, typically after a new sale lands
func (c *RedisReportCache) Invalidate(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = c.reportKey(name)
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close releases the Redis client if this cache owns it
func (c *RedisReportCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}
