package middleware

import (
	"context"
	"net/http"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"

	"github.com/pkg/errors"
)

type DailyLimitChecker interface {
	IncrementAndCheck(ctx context.Context, kind domain.Kind) (*domain.DailyLimitResult, error)
}

func DailyLimit(checker DailyLimitChecker, kind domain.Kind) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			result, err := checker.IncrementAndCheck(ctx.Context(), kind)
			if err != nil {
				return errors.WithMessage(err, "daily limit: increment and check")
			}
			if !result.Allow {
				return httperrors.New(
					http.StatusTooManyRequests,
					"daily requests limit has been reached",
					errors.Errorf("daily limit: daily requests limit has been reached for '%s'", kind),
				).WithDetail("used", result.Used).WithDetail("limit", result.Limit)
			}

			return next.Handle(ctx)
		})
	}
}
