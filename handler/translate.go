package handler

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"
	"lovebridge-gateway/service"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

type TranslationService interface {
	Translate(ctx context.Context, text string, mode string) (string, error)
	FullTranslation(ctx context.Context, text string, mode string) (*domain.FullTranslation, error)
}

type Translate struct {
	service       TranslationService
	filter        *service.ContentFilter
	usage         UsageTracker
	maxTextLength int
}

func NewTranslate(service TranslationService, filter *service.ContentFilter, usage UsageTracker, maxTextLength int) Translate {
	return Translate{
		service:       service,
		filter:        filter,
		usage:         usage,
		maxTextLength: maxTextLength,
	}
}

func (h Translate) Handle(ctx *request.Context) error {
	body := domain.TranslateRequest{}
	err := json.NewDecoder(ctx.Request().Body).Decode(&body)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid request body",
			errors.WithMessage(err, "translate: decode request body"),
		)
	}

	text := strings.TrimSpace(body.Text)
	err = h.validate(text, body.Mode)
	if err != nil {
		return err
	}

	response, err := h.process(ctx.Context(), text, body.Mode, body.Full)
	switch {
	case errors.Is(err, domain.ErrTranslatorNotConfigured):
		return httperrors.New(
			http.StatusInternalServerError,
			domain.ErrTranslatorNotConfigured.Error(),
			errors.WithMessage(err, "translate"),
		)
	case err != nil:
		return httperrors.New(
			http.StatusInternalServerError,
			"Translation failed",
			errors.WithMessage(err, "translate"),
		)
	}

	err = h.usage.Track(ctx.Context(), domain.KindTranslate)
	if err != nil {
		return errors.WithMessage(err, "translate: track usage")
	}

	return writeJson(ctx.ResponseWriter(), response)
}

func (h Translate) validate(text string, mode string) error {
	if text == "" {
		return httperrors.New(
			http.StatusBadRequest,
			"text is required",
			errors.New("translate: text is required"),
		)
	}
	if utf8.RuneCountInString(text) > h.maxTextLength {
		return httperrors.New(
			http.StatusBadRequest,
			"text is too long",
			errors.Errorf("translate: text longer than %d characters", h.maxTextLength),
		)
	}
	switch mode {
	case domain.ModeToJapanese, domain.ModeToCantonese, domain.ModeToEnglish:
	default:
		return httperrors.New(
			http.StatusBadRequest,
			"unknown translation mode",
			errors.Errorf("translate: unknown mode '%s'", mode),
		)
	}
	pattern, ok := h.filter.Check(text)
	if !ok {
		return httperrors.New(
			http.StatusBadRequest,
			"text contains forbidden content",
			errors.Errorf("translate: text matched deny pattern '%s'", pattern),
		)
	}
	return nil
}

func (h Translate) process(ctx context.Context, text string, mode string, full bool) (*domain.TranslateResponse, error) {
	if !full {
		translation, err := h.service.Translate(ctx, text, mode)
		if err != nil {
			return nil, err
		}
		return &domain.TranslateResponse{
			Translation: translation,
			Success:     true,
		}, nil
	}

	result, err := h.service.FullTranslation(ctx, text, mode)
	if err != nil {
		return nil, err
	}
	translation := result.Japanese
	if mode == domain.ModeToCantonese {
		translation = result.Cantonese
	}
	if mode == domain.ModeToEnglish {
		translation = result.English
	}
	return &domain.TranslateResponse{
		Translation: translation,
		Success:     true,
		Original:    result.Original,
		Japanese:    result.Japanese,
		Cantonese:   result.Cantonese,
		English:     result.English,
	}, nil
}
