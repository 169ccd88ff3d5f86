package middleware

import (
	"net/http"

	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"

	"github.com/pkg/errors"
)

type Authenticator interface {
	Enabled() bool
	VerifyCaller(token string) bool
}

func Authenticate(authenticator Authenticator) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if !authenticator.Enabled() {
				return next.Handle(ctx)
			}

			token := ctx.BearerToken()
			if token == "" {
				return httperrors.New(
					http.StatusUnauthorized,
					"api token required",
					errors.New("authenticate: api token required"),
				)
			}
			if !authenticator.VerifyCaller(token) {
				return httperrors.New(
					http.StatusUnauthorized,
					"invalid api token",
					errors.New("authenticate: invalid api token"),
				)
			}

			return next.Handle(ctx)
		})
	}
}
