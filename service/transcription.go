package service

import (
	"context"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, audio domain.Audio) (*domain.Transcript, error)
}

// Transcription drives an ordered list of strategies and stops at the first
// success. The last strategy is expected to be the heuristic generator,
// which never fails, so a well-formed request always resolves to a
// transcript. One attempt per strategy, no retries.
type Transcription struct {
	logger     log.Logger
	strategies []Transcriber
}

func NewTranscription(logger log.Logger, strategies ...Transcriber) Transcription {
	return Transcription{
		logger:     logger,
		strategies: strategies,
	}
}

func (s Transcription) Transcribe(ctx context.Context, audio domain.Audio) (*domain.Transcript, error) {
	var lastErr error
	for _, strategy := range s.strategies {
		transcript, err := strategy.Transcribe(ctx, audio)
		if err != nil {
			lastErr = err
			s.logger.Info(ctx, "transcription strategy failed, falling back",
				log.String("strategy", strategy.Name()),
				log.String("error", err.Error()),
			)
			continue
		}
		return transcript, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no transcription strategies configured")
	}
	return nil, errors.WithMessage(lastErr, "all transcription strategies failed")
}
