package service

import (
	"context"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
)

type RateLimitRepo interface {
	Increment(ctx context.Context, kind domain.Kind, callerKey string, now time.Time) (int64, time.Time, error)
}

type Throttling struct {
	repo   RateLimitRepo
	limits map[domain.Kind]int
}

func NewThrottling(repo RateLimitRepo, limits map[domain.Kind]int) Throttling {
	return Throttling{
		repo:   repo,
		limits: limits,
	}
}

func (s Throttling) AllowRateLimit(ctx context.Context, kind domain.Kind, callerKey string) (*domain.RateLimitResult, error) {
	limit, ok := s.limits[kind]
	if !ok {
		return &domain.RateLimitResult{
			Allow:      true,
			Remaining:  -1,
			RetryAfter: -1,
		}, nil
	}

	now := time.Now()
	count, resetAt, err := s.repo.Increment(ctx, kind, callerKey, now)
	if err != nil {
		return nil, errors.WithMessage(err, "increment")
	}

	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}

	return &domain.RateLimitResult{
		Allow:      count <= int64(limit),
		Remaining:  int(remaining),
		RetryAfter: resetAt.Sub(now),
	}, nil
}
