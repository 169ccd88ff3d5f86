package middleware

import (
	"net/http"
	"time"

	"lovebridge-gateway/request"

	"github.com/txix-open/isp-kit/log"
)

type writerWrapper struct {
	http.ResponseWriter

	statusCode int
}

func (w *writerWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *writerWrapper) StatusCode() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

// Logger writes one debug record per request. Request and response bodies
// are never logged: they may contain caller speech and credentials travel
// in headers.
func Logger(logger log.Logger, enableRequestLogging bool) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if !enableRequestLogging {
				return next.Handle(ctx)
			}

			writer := &writerWrapper{ResponseWriter: ctx.ResponseWriter()}
			ctx.SetResponseWriter(writer)

			startedAt := time.Now()
			err := next.Handle(ctx)

			r := ctx.Request()
			logger.Debug(ctx.Context(), "log request",
				log.String("httpMethod", r.Method),
				log.String("endpoint", ctx.Endpoint()),
				log.String("callerKey", ctx.CallerKey()),
				log.Int("statusCode", writer.StatusCode()),
				log.Int64("elapsedTimeMs", time.Since(startedAt).Milliseconds()),
			)

			return err
		})
	}
}
