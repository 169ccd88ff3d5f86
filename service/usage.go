package service

import (
	"context"
	"time"

	"lovebridge-gateway/conf"
	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
)

type UsageRepo interface {
	Add(ctx context.Context, kind domain.Kind, date string, cost float64) error
	Counters(ctx context.Context, date string) (map[domain.Kind]int64, float64, error)
	Reset(ctx context.Context, date string) error
}

// Usage tracks served requests and a rough dollar-cost estimate. Values are
// as durable as the underlying store: per-process with the memory store,
// shared and restart-surviving with redis.
type Usage struct {
	repo        UsageRepo
	costs       map[domain.Kind]float64
	dailyLimits *DailyLimit
}

func NewUsage(repo UsageRepo, config conf.Usage, dailyLimits *DailyLimit) Usage {
	return Usage{
		repo: repo,
		costs: map[domain.Kind]float64{
			domain.KindSpeech:    config.SpeechRequestCost,
			domain.KindTranslate: config.TranslationCost,
		},
		dailyLimits: dailyLimits,
	}
}

// Track records one served request at the configured per-call cost.
func (s Usage) Track(ctx context.Context, kind domain.Kind) error {
	return s.TrackWithCost(ctx, kind, s.costs[kind])
}

// TrackWithCost records one served request at an explicit cost. Demo
// transcripts pass 0: they hit no paid upstream.
func (s Usage) TrackWithCost(ctx context.Context, kind domain.Kind, cost float64) error {
	err := s.repo.Add(ctx, kind, s.today(), cost)
	if err != nil {
		return errors.WithMessage(err, "usage repo add")
	}
	return nil
}

func (s Usage) Snapshot(ctx context.Context) (*domain.UsageSnapshot, error) {
	date := s.today()
	counters, cost, err := s.repo.Counters(ctx, date)
	if err != nil {
		return nil, errors.WithMessage(err, "usage repo counters")
	}

	maxTranslations, _ := s.dailyLimits.Limit(domain.KindTranslate)
	maxSpeechRequests, _ := s.dailyLimits.Limit(domain.KindSpeech)

	return &domain.UsageSnapshot{
		Date:                date,
		TotalTranslations:   counters[domain.KindTranslate],
		TotalSpeechRequests: counters[domain.KindSpeech],
		EstimatedCost:       cost,
		MaxTranslations:     maxTranslations,
		MaxSpeechRequests:   maxSpeechRequests,
	}, nil
}

func (s Usage) Reset(ctx context.Context) error {
	err := s.repo.Reset(ctx, s.today())
	if err != nil {
		return errors.WithMessage(err, "usage repo reset")
	}
	return nil
}

func (s Usage) today() string {
	return time.Now().Format(dateLayout)
}

func (s Usage) UpdateLimits(maxTranslations *int64, maxSpeechRequests *int64) {
	if maxTranslations != nil {
		s.dailyLimits.UpdateLimit(domain.KindTranslate, *maxTranslations)
	}
	if maxSpeechRequests != nil {
		s.dailyLimits.UpdateLimit(domain.KindSpeech, *maxSpeechRequests)
	}
}
