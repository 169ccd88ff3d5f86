package provider

import (
	"bytes"
	"context"
	"strings"
	"time"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAiTranscriber is the primary speech-to-text path (Whisper).
type OpenAiTranscriber struct {
	cli     *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAiTranscriber(apiKey string, baseUrl string, model string, timeout time.Duration) *OpenAiTranscriber {
	config := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		config.BaseURL = baseUrl
	}
	return &OpenAiTranscriber{
		cli:     openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

func (p *OpenAiTranscriber) Name() string {
	return "openai-whisper"
}

func (p *OpenAiTranscriber) Transcribe(ctx context.Context, audio domain.Audio) (*domain.Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.cli.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.model,
		FilePath: fileNameFor(audio.MimeType),
		Reader:   bytes.NewReader(audio.Data),
	})
	if err != nil {
		return nil, errors.WithMessage(err, "create transcription")
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, domain.ErrEmptyTranscription
	}

	return &domain.Transcript{
		Text:   text,
		Source: domain.SourcePrimaryApi,
	}, nil
}

// fileNameFor gives the upload a name whose extension matches the declared
// MIME type; Whisper refuses files it can't identify.
func fileNameFor(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "audio/wav"), strings.HasPrefix(mimeType, "audio/x-wav"):
		return "audio.wav"
	case strings.HasPrefix(mimeType, "audio/mpeg"), strings.HasPrefix(mimeType, "audio/mp3"):
		return "audio.mp3"
	case strings.HasPrefix(mimeType, "audio/mp4"):
		return "audio.mp4"
	case strings.HasPrefix(mimeType, "audio/ogg"):
		return "audio.ogg"
	default:
		return "audio.webm"
	}
}
