// Package redislock provides a best-effort distributed lock so only one
// instance runs the nightly attendance close. Without redis the caller
// proceeds unlocked; the close itself is idempotent.
package redislock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Locker struct {
	client *redis.Client
}

// NewLocker wraps an optional redis client. A nil client disables locking.
func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: client}
}

// NewClient connects to redis with short timeouts. Returns nil when addr
// is empty so single-instance deployments skip redis entirely.
func NewClient(addr string, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

// Acquire attempts SET NX on the key. It returns true when this instance
// holds the lock, and degrades to true when redis is unavailable.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	ok, err := l.client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return true
	}
	return ok
}

// Release drops the lock early. Safe to call without redis.
func (l *Locker) Release(ctx context.Context, key string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, key)
}

// Healthy verifies redis connectivity.
func (l *Locker) Healthy(ctx context.Context) bool {
	if l == nil || l.client == nil {
		return false
	}
	return l.client.Ping(ctx).Err() == nil
}
