package domain

import (
	"time"
)

type Kind string

const (
	KindSpeech    Kind = "speech"
	KindTranslate Kind = "translate"
)

type RateLimitResult struct {
	Allow      bool
	Remaining  int
	RetryAfter time.Duration
}

type DailyLimitResult struct {
	Allow bool
	Used  int64
	Limit int64
}
