package repository

import (
	"context"
	"sync"

	"lovebridge-gateway/domain"
)

type dailyCounter struct {
	date  string
	count int64
}

type DailyLimitMemory struct {
	lock     sync.Mutex
	counters map[domain.Kind]*dailyCounter
}

func NewDailyLimitMemory() *DailyLimitMemory {
	return &DailyLimitMemory{
		counters: map[domain.Kind]*dailyCounter{},
	}
}

// Increment resets the counter lazily when the stored date differs from the
// requested one. A burst after several idle days still resets exactly once.
func (r *DailyLimitMemory) Increment(_ context.Context, kind domain.Kind, date string) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	counter, ok := r.counters[kind]
	if !ok || counter.date != date {
		counter = &dailyCounter{date: date}
		r.counters[kind] = counter
	}
	counter.count++

	return counter.count, nil
}
