package provider

import (
	"context"
	"strings"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
)

// HuggingFaceTranscriber is the secondary speech-to-text path: the free
// inference endpoint accepting raw audio bytes.
type HuggingFaceTranscriber struct {
	cli     *httpcli.Client
	url     string
	apiKey  string
	timeout time.Duration
}

func NewHuggingFaceTranscriber(url string, apiKey string, timeout time.Duration) *HuggingFaceTranscriber {
	return &HuggingFaceTranscriber{
		cli:     httpcli.New(),
		url:     url,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

func (p *HuggingFaceTranscriber) Name() string {
	return "huggingface-whisper"
}

func (p *HuggingFaceTranscriber) Transcribe(ctx context.Context, audio domain.Audio) (*domain.Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result := struct {
		Text string `json:"text"`
	}{}
	_, err := p.cli.Post(p.url).
		Header("Authorization", "Bearer "+p.apiKey).
		Header("Content-Type", audio.MimeType).
		RequestBody(audio.Data).
		JsonResponseBody(&result).
		StatusCodeToError().
		Do(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "post audio")
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return nil, domain.ErrEmptyTranscription
	}

	return &domain.Transcript{
		Text:   text,
		Source: domain.SourceSecondaryApi,
	}, nil
}
