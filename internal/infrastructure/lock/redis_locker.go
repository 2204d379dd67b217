// Package lock provides a Redis-backed execution lock so a draft cannot be
// executed twice by concurrent approvers.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wrapcommand/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL bounds how long a crashed executor can hold a draft.
	DefaultTTL = 2 * time.Minute

	keyPrefix = "wrapcommand:exec:"
)

// ErrLockNotHeld is returned by Release when the key expired or now belongs
// to another holder.
var ErrLockNotHeld = errors.New("execution lock not held")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements IExecutionLocker with SET NX.
type RedisLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IExecutionLocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Acquire stores a fresh owner token under key. ok is false if the key was
// already held.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	set, err := l.rdb.SetNX(ctx, keyPrefix+key, token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("lock SETNX: %w", err)
	}
	if !set {
		return "", false, nil
	}
	return token, true, nil
}

// Release deletes key only while it still holds token.
func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	n, err := releaseScript.Run(ctx, l.rdb, []string{keyPrefix + key}, token).Int()
	if err != nil {
		return fmt.Errorf("lock release: %w", err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// NoopLocker always grants the lock. Used when Redis is not configured; the
// conditional draft transition in the store still rejects a second executor.
type NoopLocker struct{}

var _ interfaces.IExecutionLocker = NoopLocker{}

func (NoopLocker) Acquire(context.Context, string) (string, bool, error) { return "", true, nil }
func (NoopLocker) Release(context.Context, string, string) error         { return nil }
