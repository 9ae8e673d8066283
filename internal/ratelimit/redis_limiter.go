package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares windows between instances through Redis counters.
// It needs Redis 7 or newer for EXPIRE NX.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow increments the key's counter and, in the same transaction, starts its
// expiry when it has none. A key can never be left without a TTL.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := r.prefix + key

	seconds := int64(r.window / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	resps := r.client.DoMulti(ctx,
		r.client.B().Multi().Build(),
		r.client.B().Incr().Key(fullKey).Build(),
		r.client.B().Expire().Key(fullKey).Seconds(seconds).Nx().Build(),
		r.client.B().Exec().Build(),
	)
	for _, resp := range resps {
		if err := resp.Error(); err != nil {
			return false, err
		}
	}

	results, err := resps[len(resps)-1].ToArray()
	if err != nil {
		return false, err
	}
	if len(results) != 2 {
		return false, fmt.Errorf("rate limit transaction for %s returned %d results", fullKey, len(results))
	}

	count, err := results[0].AsInt64()
	if err != nil {
		return false, err
	}
	return count <= int64(r.limit), nil
}
