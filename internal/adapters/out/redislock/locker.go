// Package redislock implements a scope locker on Redis, for deployments where
// several catalog instances share one database but advisory locks are not an
// option (e.g. behind a transaction-pooling proxy).
//
// A lock is a key set with SETNX and a TTL holding a random token. Release
// deletes the key only if it still holds that token.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/adapters/out/postgres/positionrepo"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	DefaultTTL        = 10 * time.Second
	DefaultRetryDelay = 20 * time.Millisecond
	keyPrefix         = "catalog:scope-lock:"
)

// ErrLockTimeout is returned when the lock is still held by someone else once
// the wait budget is spent.
var ErrLockTimeout = errors.New("scope lock wait timed out")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker implements positionrepo.ScopeLocker.
type Locker struct {
	rc         redis.UniversalClient
	ttl        time.Duration
	retryDelay time.Duration
	maxWait    time.Duration
}

type Option func(*Locker)

// WithTTL bounds how long a crashed holder can block a scope.
func WithTTL(ttl time.Duration) Option {
	return func(l *Locker) { l.ttl = ttl }
}

// WithMaxWait bounds the time spent retrying; zero waits until ctx is done.
func WithMaxWait(d time.Duration) Option {
	return func(l *Locker) { l.maxWait = d }
}

func WithRetryDelay(d time.Duration) Option {
	return func(l *Locker) { l.retryDelay = d }
}

func NewLocker(rc redis.UniversalClient, opts ...Option) *Locker {
	l := &Locker{
		rc:         rc,
		ttl:        DefaultTTL,
		retryDelay: DefaultRetryDelay,
		maxWait:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ positionrepo.ScopeLocker = (*Locker)(nil)

// Lock retries SETNX until it wins, ctx is done or the wait budget is spent.
// The gorm handle is unused: the lock lives outside the database.
func (l *Locker) Lock(ctx context.Context, _ *gorm.DB, key string) (positionrepo.Release, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	if l.maxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.maxWait)
		defer cancel()
	}

	ticker := time.NewTicker(l.retryDelay)
	defer ticker.Stop()

	for {
		ok, err := l.rc.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("acquire scope lock: %w", err)
		}
		if ok {
			return l.release(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *Locker) release(redisKey, token string) positionrepo.Release {
	return func(ctx context.Context) error {
		return releaseScript.Run(ctx, l.rc, []string{redisKey}, token).Err()
	}
}
