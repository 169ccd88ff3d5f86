package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lovebridge-gateway/domain"
)

const (
	sweepEvery = 256
)

type rateLimitEntry struct {
	count   int64
	resetAt time.Time
}

// RateLimitMemory is the single-process variant: volatile, lost on restart
// and not shared between instances.
type RateLimitMemory struct {
	lock    sync.Mutex
	entries map[string]*rateLimitEntry
	writes  int
	now     func() time.Time
}

func NewRateLimitMemory() *RateLimitMemory {
	return &RateLimitMemory{
		entries: map[string]*rateLimitEntry{},
		now:     time.Now,
	}
}

func (r *RateLimitMemory) Increment(_ context.Context, kind domain.Kind, callerKey string, now time.Time) (int64, time.Time, error) {
	key := fmt.Sprintf("%s:%s", kind, callerKey)

	r.lock.Lock()
	defer r.lock.Unlock()

	r.writes++
	if r.writes%sweepEvery == 0 {
		r.sweep()
	}

	entry, ok := r.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		entry = &rateLimitEntry{
			count:   0,
			resetAt: now.Truncate(rateLimitWindow).Add(rateLimitWindow),
		}
		r.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt, nil
}

// sweep drops entries for callers whose window has long passed, entries for
// inactive callers otherwise accumulate for the process lifetime.
func (r *RateLimitMemory) sweep() {
	now := r.now()
	for key, entry := range r.entries {
		if now.After(entry.resetAt) {
			delete(r.entries, key)
		}
	}
}
