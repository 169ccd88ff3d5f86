package handler

import (
	"context"
	"net/http"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

type UsageService interface {
	Snapshot(ctx context.Context) (*domain.UsageSnapshot, error)
	Reset(ctx context.Context) error
	UpdateLimits(maxTranslations *int64, maxSpeechRequests *int64)
}

type Admin struct {
	usage UsageService
}

func NewAdmin(usage UsageService) Admin {
	return Admin{
		usage: usage,
	}
}

func (h Admin) Handle(ctx *request.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		return h.snapshot(ctx)
	case http.MethodPost:
		return h.command(ctx)
	default:
		return httperrors.New(
			http.StatusMethodNotAllowed,
			"method not allowed",
			errors.Errorf("admin: method %s not allowed", ctx.Request().Method),
		)
	}
}

func (h Admin) snapshot(ctx *request.Context) error {
	snapshot, err := h.usage.Snapshot(ctx.Context())
	if err != nil {
		return errors.WithMessage(err, "admin: usage snapshot")
	}
	return writeJson(ctx.ResponseWriter(), snapshot)
}

func (h Admin) command(ctx *request.Context) error {
	command := domain.AdminCommand{}
	err := json.NewDecoder(ctx.Request().Body).Decode(&command)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid request body",
			errors.WithMessage(err, "admin: decode request body"),
		)
	}

	switch command.Action {
	case domain.AdminActionReset:
		err := h.usage.Reset(ctx.Context())
		if err != nil {
			return errors.WithMessage(err, "admin: reset usage")
		}
	case domain.AdminActionUpdateLimits:
		if command.MaxTranslations == nil && command.MaxSpeechRequests == nil {
			return httperrors.New(
				http.StatusBadRequest,
				"updateLimits requires maxTranslations or maxSpeechRequests",
				errors.New("admin: updateLimits without limits"),
			)
		}
		if command.MaxTranslations != nil && *command.MaxTranslations <= 0 ||
			command.MaxSpeechRequests != nil && *command.MaxSpeechRequests <= 0 {
			return httperrors.New(
				http.StatusBadRequest,
				"limits must be positive",
				errors.New("admin: non-positive limit"),
			)
		}
		h.usage.UpdateLimits(command.MaxTranslations, command.MaxSpeechRequests)
	default:
		return httperrors.New(
			http.StatusBadRequest,
			"unknown action",
			errors.Errorf("admin: unknown action '%s'", command.Action),
		)
	}

	snapshot, err := h.usage.Snapshot(ctx.Context())
	if err != nil {
		return errors.WithMessage(err, "admin: usage snapshot")
	}
	return writeJson(ctx.ResponseWriter(), snapshot)
}
