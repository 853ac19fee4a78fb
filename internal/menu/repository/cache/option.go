package cache

import (
	"time"

	"github.com/redis/go-redis/v9"

	"voice-ordering/pkg/log"
)

type options struct {
	ttl         time.Duration
	size        int
	redisClient *redis.Client
	l           log.Logger
}

// Option configures the cache.
type Option func(*options)

// WithTTL sets how long catalog entries stay cached.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// WithSize bounds the number of entries held by the memory driver.
func WithSize(size int) Option {
	return func(o *options) { o.size = size }
}

// WithRedisClient sets the client used by the redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(o *options) { o.redisClient = client }
}

func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.l = l
		}
	}
}
