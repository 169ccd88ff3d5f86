package middleware

import (
	"net/http"

	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/request"

	"github.com/pkg/errors"
)

type AdminAuthenticator interface {
	VerifyAdmin(token string) bool
}

func AdminAuthenticate(auth AdminAuthenticator) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			adminToken := ctx.BearerToken()
			if adminToken == "" {
				return httperrors.New(
					http.StatusUnauthorized,
					"admin token required",
					errors.New("admin authenticate: admin token required"),
				)
			}
			if !auth.VerifyAdmin(adminToken) {
				return httperrors.New(
					http.StatusUnauthorized,
					"invalid admin token",
					errors.New("admin authenticate: invalid admin token"),
				)
			}

			ctx.AuthenticateAdmin()
			return next.Handle(ctx)
		})
	}
}
