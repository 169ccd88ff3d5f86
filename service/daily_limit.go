package service

import (
	"context"
	"sync"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
)

type DailyLimitRepo interface {
	Increment(ctx context.Context, kind domain.Kind, date string) (int64, error)
}

// DailyLimit holds the per-day ceilings. Limits are mutable at runtime
// through the admin endpoint.
type DailyLimit struct {
	repo DailyLimitRepo

	lock   sync.RWMutex
	limits map[domain.Kind]int64
}

func NewDailyLimit(repo DailyLimitRepo, limits map[domain.Kind]int64) *DailyLimit {
	copied := make(map[domain.Kind]int64, len(limits))
	for kind, limit := range limits {
		copied[kind] = limit
	}
	return &DailyLimit{
		repo:   repo,
		limits: copied,
	}
}

func (s *DailyLimit) IncrementAndCheck(ctx context.Context, kind domain.Kind) (*domain.DailyLimitResult, error) {
	limit, ok := s.Limit(kind)
	if !ok {
		return &domain.DailyLimitResult{Allow: true, Used: 0, Limit: -1}, nil
	}

	date := time.Now().Format(dateLayout)
	used, err := s.repo.Increment(ctx, kind, date)
	if err != nil {
		return nil, errors.WithMessage(err, "increment")
	}

	return &domain.DailyLimitResult{
		Allow: used <= limit,
		Used:  used,
		Limit: limit,
	}, nil
}

func (s *DailyLimit) Limit(kind domain.Kind) (int64, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	limit, ok := s.limits[kind]
	return limit, ok
}

func (s *DailyLimit) UpdateLimit(kind domain.Kind, limit int64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.limits[kind] = limit
}
