package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio domain.Audio) (*domain.Transcript, error)
}

type UsageTracker interface {
	Track(ctx context.Context, kind domain.Kind) error
	TrackWithCost(ctx context.Context, kind domain.Kind, cost float64) error
}

type Speech struct {
	service TranscriptionService
	usage   UsageTracker
}

func NewSpeech(service TranscriptionService, usage UsageTracker) Speech {
	return Speech{
		service: service,
		usage:   usage,
	}
}

func (h Speech) Handle(ctx *request.Context) error {
	body := domain.SpeechToTextRequest{}
	err := json.NewDecoder(ctx.Request().Body).Decode(&body)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid request body",
			errors.WithMessage(err, "speech: decode request body"),
		)
	}
	if body.AudioData == "" {
		return httperrors.New(
			http.StatusBadRequest,
			"audioData is required",
			errors.New("speech: audioData is required"),
		)
	}

	data, err := decodeAudio(body.AudioData)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"audioData is not valid base64",
			errors.WithMessage(err, "speech: decode audioData"),
		)
	}

	transcript, err := h.service.Transcribe(ctx.Context(), domain.Audio{
		Data:     data,
		MimeType: body.MimeType,
	})
	if err != nil {
		return errors.WithMessage(err, "speech: transcribe")
	}

	if transcript.Demo {
		err = h.usage.TrackWithCost(ctx.Context(), domain.KindSpeech, 0)
	} else {
		err = h.usage.Track(ctx.Context(), domain.KindSpeech)
	}
	if err != nil {
		return errors.WithMessage(err, "speech: track usage")
	}

	return writeJson(ctx.ResponseWriter(), domain.SpeechToTextResponse{
		Text:          transcript.Text,
		Success:       true,
		Demo:          transcript.Demo,
		Source:        transcript.Source,
		AudioAnalysis: transcript.Analysis,
	})
}

// decodeAudio accepts bare base64 as well as browser data URLs
// ("data:audio/webm;base64,...").
func decodeAudio(audioData string) ([]byte, error) {
	if strings.HasPrefix(audioData, "data:") {
		_, payload, found := strings.Cut(audioData, ",")
		if found {
			audioData = payload
		}
	}
	return base64.StdEncoding.DecodeString(audioData)
}
