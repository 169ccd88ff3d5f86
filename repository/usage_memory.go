package repository

import (
	"context"
	"sync"

	"lovebridge-gateway/domain"
)

// UsageMemory holds a single day of counters and starts over lazily when
// asked about a different date.
type UsageMemory struct {
	lock     sync.Mutex
	date     string
	counters map[domain.Kind]int64
	cost     float64
}

func NewUsageMemory() *UsageMemory {
	return &UsageMemory{
		counters: map[domain.Kind]int64{},
	}
}

func (r *UsageMemory) Add(_ context.Context, kind domain.Kind, date string, cost float64) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.rollover(date)
	r.counters[kind]++
	r.cost += cost
	return nil
}

func (r *UsageMemory) Counters(_ context.Context, date string) (map[domain.Kind]int64, float64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.rollover(date)
	counters := make(map[domain.Kind]int64, len(r.counters))
	for kind, count := range r.counters {
		counters[kind] = count
	}
	return counters, r.cost, nil
}

func (r *UsageMemory) Reset(_ context.Context, date string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.date = date
	r.counters = map[domain.Kind]int64{}
	r.cost = 0
	return nil
}

func (r *UsageMemory) rollover(date string) {
	if r.date == date {
		return
	}
	r.date = date
	r.counters = map[domain.Kind]int64{}
	r.cost = 0
}
