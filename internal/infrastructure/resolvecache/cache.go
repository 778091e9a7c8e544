// Package resolvecache caches structure-resolution results in Redis so that
// repeated lookups of the same drug name skip the resolver, with singleflight
// collapsing concurrent lookups of the same key.
package resolvecache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/internal/intelligence/chemistry"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// Config tunes the resolution cache.
type Config struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	KeyPrefix   string        `yaml:"key_prefix"`
	TTL         time.Duration `yaml:"ttl"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// NewRedisClient builds a go-redis client from the cache config.
func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}

// CachingResolver decorates a StructureResolver with a Redis read-through
// cache.  Cache failures degrade to the inner resolver; they are never
// surfaced to callers.
type CachingResolver struct {
	inner  chemistry.StructureResolver
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	logger logging.Logger
}

// New creates a caching resolver.
func New(inner chemistry.StructureResolver, rdb *redis.Client, cfg Config, log logging.Logger) (*CachingResolver, error) {
	if inner == nil {
		return nil, errors.InvalidParam("inner resolver is required")
	}
	if rdb == nil {
		return nil, errors.InvalidParam("redis client is required")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "biotriage:"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachingResolver{
		inner:  inner,
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		logger: log,
	}, nil
}

// Resolve implements chemistry.StructureResolver.
func (c *CachingResolver) Resolve(ctx context.Context, input string) (*chemistry.ResolvedStructure, error) {
	key := c.key(input)

	if cached, ok := c.get(ctx, key); ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		res, err := c.inner.Resolve(ctx, input)
		if err != nil {
			return nil, err
		}
		// Only successful resolutions are cached: a miss may succeed later
		// once the dictionary grows.
		if res.IsResolved {
			c.set(ctx, key, res)
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*chemistry.ResolvedStructure), nil
}

func (c *CachingResolver) get(ctx context.Context, key string) (*chemistry.ResolvedStructure, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("resolution cache read failed", logging.String("key", key), logging.Err(err))
		}
		return nil, false
	}
	var res chemistry.ResolvedStructure
	if err := json.Unmarshal(raw, &res); err != nil {
		c.logger.Warn("resolution cache entry corrupt, dropping", logging.String("key", key), logging.Err(err))
		c.rdb.Del(ctx, key)
		return nil, false
	}
	return &res, true
}

func (c *CachingResolver) set(ctx context.Context, key string, res *chemistry.ResolvedStructure) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("resolution cache write failed", logging.String("key", key), logging.Err(err))
	}
}

func (c *CachingResolver) key(input string) string {
	return c.prefix + "resolve:" + strings.ToLower(strings.TrimSpace(input))
}
