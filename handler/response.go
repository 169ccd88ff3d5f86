package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

func writeJson(w http.ResponseWriter, value any) error {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		return errors.WithMessage(err, "encode response body")
	}
	return nil
}
