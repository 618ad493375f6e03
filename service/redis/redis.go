package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/marketfront/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
	// ErrNoTTL is returned by TTL when the key exists without expiry
	ErrNoTTL = errors.New("redis key has no ttl")
	// ErrNoPool is returned when no pool is configured
	ErrNoPool = errors.New("redis pool not configured")
)

// Forever stores a key without expiry
const Forever = time.Duration(-1)

// Service is the subset of redis commands the cache layer relies on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
}
