package middleware

import (
	"context"
	"fmt"
	"net/http"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"

	"github.com/pkg/errors"
)

type Throttler interface {
	AllowRateLimit(ctx context.Context, kind domain.Kind, callerKey string) (*domain.RateLimitResult, error)
}

func Throttling(throttler Throttler, kind domain.Kind) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			result, err := throttler.AllowRateLimit(ctx.Context(), kind, ctx.CallerKey())
			if err != nil {
				return errors.WithMessage(err, "throttling: allow rate limit")
			}
			if !result.Allow {
				retryAfter := int(result.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				return httperrors.New(
					http.StatusTooManyRequests,
					fmt.Sprintf("rate limit has been reached, try after %ds", retryAfter),
					errors.Errorf("throttling: rate limit has been reached for caller '%s' on '%s'", ctx.CallerKey(), kind),
				).WithDetail("retryAfter", retryAfter)
			}

			return next.Handle(ctx)
		})
	}
}
