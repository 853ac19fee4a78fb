package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"voice-ordering/internal/menu/repository"
	"voice-ordering/pkg/log"
)

// Driver selects the cache backend.
type Driver string

const (
	DriverNone   Driver = "none"
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"

	defaultTTL  = 5 * time.Minute
	defaultSize = 256
	keyPrefix   = "voiceorder:menu:"
)

var (
	ErrInvalidDriver = errors.New("invalid cache driver")
	ErrInvalidConfig = errors.New("invalid cache config")
)

// store is a byte-oriented key/value backend.
type store interface {
	get(ctx context.Context, key string) ([]byte, bool, error)
	set(ctx context.Context, key string, val []byte) error
}

type implRepository struct {
	inner repository.Repository
	store store
	l     log.Logger
}

// New wraps inner with a read-through cache. DriverNone returns inner unchanged.
func New(driver Driver, inner repository.Repository, opts ...Option) (repository.Repository, error) {
	if inner == nil {
		return nil, fmt.Errorf("menu/repository/cache: inner repository is required")
	}

	cfg := &options{ttl: defaultTTL, size: defaultSize, l: log.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ttl <= 0 {
		cfg.ttl = defaultTTL
	}
	if cfg.size <= 0 {
		cfg.size = defaultSize
	}

	var s store
	switch driver {
	case DriverNone, "":
		return inner, nil
	case DriverMemory:
		s = &memoryStore{lru: expirable.NewLRU[string, []byte](cfg.size, nil, cfg.ttl)}
	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		s = &redisStore{client: cfg.redisClient, ttl: cfg.ttl}
	default:
		return nil, ErrInvalidDriver
	}

	return &implRepository{inner: inner, store: s, l: cfg.l}, nil
}

type memoryStore struct {
	lru *expirable.LRU[string, []byte]
}

func (s *memoryStore) get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := s.lru.Get(key)
	return val, ok, nil
}

func (s *memoryStore) set(_ context.Context, key string, val []byte) error {
	s.lru.Add(key, val)
	return nil
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *redisStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *redisStore) set(ctx context.Context, key string, val []byte) error {
	return s.client.Set(ctx, keyPrefix+key, val, s.ttl).Err()
}
