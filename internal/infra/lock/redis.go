package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	lockTTL      = 10 * time.Second
	retryDelay   = 50 * time.Millisecond
	acquireLimit = 5 * time.Second
)

// RedisLocker coordinates booking locks across processes with SET NX PX.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(addr, password string) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisLocker{client: client}, nil
}

func (l *RedisLocker) Acquire(ctx context.Context, shopID uint, date time.Time) (func(), error) {
	k := key(shopID, date)
	owner := uuid.NewString()

	deadline := time.Now().Add(acquireLimit)
	for {
		ok, err := l.client.SetNX(ctx, k, owner, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, errors.New("lock: acquire timed out")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	release := func() {
		// Delete only if we still own the lock; an expired lock may have been
		// re-acquired by another request.
		val, err := l.client.Get(context.Background(), k).Result()
		if err == nil && val == owner {
			if err := l.client.Del(context.Background(), k).Err(); err != nil {
				log.Warn().Err(err).Str("key", k).Msg("failed to release booking lock")
			}
		}
	}
	return release, nil
}
