package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	usageCostField = "estimatedCost"
)

// Usage keeps per-day counters in a hash keyed by date, so yesterday's
// numbers age out on their own and a new day starts from an empty hash.
type Usage struct {
	cli redis.UniversalClient
}

func NewUsage(cli redis.UniversalClient) Usage {
	return Usage{
		cli: cli,
	}
}

func (r Usage) Add(ctx context.Context, kind domain.Kind, date string, cost float64) error {
	key := r.key(date)
	_, err := r.cli.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.HIncrBy(ctx, key, string(kind), 1)
		p.HIncrByFloat(ctx, key, usageCostField, cost)
		p.ExpireNX(ctx, key, 48*time.Hour) //nolint:mnd
		return nil
	})
	if err != nil {
		return errors.WithMessage(err, "pipelined hincrby")
	}
	return nil
}

func (r Usage) Counters(ctx context.Context, date string) (map[domain.Kind]int64, float64, error) {
	values, err := r.cli.HGetAll(ctx, r.key(date)).Result()
	if err != nil {
		return nil, 0, errors.WithMessage(err, "hgetall")
	}

	counters := map[domain.Kind]int64{}
	cost := float64(0)
	for field, raw := range values {
		if field == usageCostField {
			cost, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, 0, errors.WithMessagef(err, "parse cost '%s'", raw)
			}
			continue
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, 0, errors.WithMessagef(err, "parse counter '%s'", raw)
		}
		counters[domain.Kind(field)] = count
	}

	return counters, cost, nil
}

func (r Usage) Reset(ctx context.Context, date string) error {
	err := r.cli.Del(ctx, r.key(date)).Err()
	if err != nil {
		return errors.WithMessage(err, "del")
	}
	return nil
}

func (r Usage) key(date string) string {
	return fmt.Sprintf("usage:%s", date)
}
