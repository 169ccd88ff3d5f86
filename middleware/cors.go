package middleware

import (
	"net/http"

	"lovebridge-gateway/request"
)

// Cors echoes permissive CORS headers on every response and answers
// OPTIONS preflight with 200 before any auth or quota check runs.
func Cors(allowOrigin string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			header := ctx.ResponseWriter().Header()
			header.Set("Access-Control-Allow-Origin", allowOrigin)
			header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if ctx.Request().Method == http.MethodOptions {
				ctx.ResponseWriter().WriteHeader(http.StatusOK)
				return nil
			}

			return next.Handle(ctx)
		})
	}
}
