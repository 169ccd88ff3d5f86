package repository

import (
	"context"
	"fmt"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type DailyLimit struct {
	cli redis.UniversalClient
}

func NewDailyLimit(cli redis.UniversalClient) DailyLimit {
	return DailyLimit{
		cli: cli,
	}
}

func (r DailyLimit) Increment(ctx context.Context, kind domain.Kind, date string) (int64, error) {
	key := r.key(kind, date)

	value, err := r.cli.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.WithMessage(err, "incr")
	}

	if value == 1 {
		err := r.cli.ExpireNX(ctx, key, 48*time.Hour).Err() //nolint:mnd
		if err != nil {
			return 0, errors.WithMessage(err, "expire nx")
		}
	}

	return value, nil
}

func (r DailyLimit) key(kind domain.Kind, date string) string {
	return fmt.Sprintf("daily_limit:%s:%s", kind, date)
}
