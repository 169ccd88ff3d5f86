package repository

import (
	"context"
	"fmt"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitWindow = time.Minute
)

// RateLimit counts requests in fixed tumbling windows shared across
// instances. The key carries the window start, so a new window is a new key
// and expired ones are cleaned up by redis itself.
type RateLimit struct {
	cli redis.UniversalClient
}

func NewRateLimit(cli redis.UniversalClient) RateLimit {
	return RateLimit{
		cli: cli,
	}
}

func (r RateLimit) Increment(ctx context.Context, kind domain.Kind, callerKey string, now time.Time) (int64, time.Time, error) {
	windowStart := now.Truncate(rateLimitWindow)
	key := r.key(kind, callerKey, windowStart)

	value, err := r.cli.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, errors.WithMessage(err, "incr")
	}

	if value == 1 {
		err := r.cli.ExpireNX(ctx, key, 2*rateLimitWindow).Err()
		if err != nil {
			return 0, time.Time{}, errors.WithMessage(err, "expire nx")
		}
	}

	return value, windowStart.Add(rateLimitWindow), nil
}

func (r RateLimit) key(kind domain.Kind, callerKey string, windowStart time.Time) string {
	return fmt.Sprintf("rate_limit:%s:%s:%d", kind, callerKey, windowStart.Unix())
}
