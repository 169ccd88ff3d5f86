package httperrors

import (
	"net/http"

	"github.com/txix-open/isp-kit/json"
)

type HttpError struct {
	statusCode  int
	userMessage string
	details     map[string]any
	err         error
}

func New(statusCode int, userMessage string, internalError error) HttpError {
	return HttpError{
		statusCode:  statusCode,
		userMessage: userMessage,
		err:         internalError,
	}
}

func (e HttpError) Error() string {
	return e.err.Error()
}

func (e HttpError) StatusCode() int {
	return e.statusCode
}

// WithDetail adds a top-level field to the error body, e.g. retryAfter.
func (e HttpError) WithDetail(key string, value any) HttpError {
	details := make(map[string]any, len(e.details)+1)
	for k, v := range e.details {
		details[k] = v
	}
	details[key] = value
	e.details = details
	return e
}

func (e HttpError) WriteError(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.statusCode)
	data := map[string]any{
		"success": false,
		"error":   e.userMessage,
	}
	for key, value := range e.details {
		data[key] = value
	}
	return json.NewEncoder(w).Encode(data)
}
