package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld means another process is already refreshing the same row.
var ErrLockHeld = errors.New("refresh lock held")

// RefreshLocker serializes refreshes of the same row across processes.
// TryLock returns ErrLockHeld when the key is taken.
type RefreshLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, err error)
}

// RedisRefreshLock is a SET NX lock with a per-acquisition token.
type RedisRefreshLock struct {
	client *redis.Client
}

func NewRedisRefreshLock(client *redis.Client) *RedisRefreshLock {
	return &RedisRefreshLock{client: client}
}

const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

func (l *RedisRefreshLock) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return func(ctx context.Context) error {
		// only delete the key while it still carries our token
		if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("release lock: %w", err)
		}
		return nil
	}, nil
}
