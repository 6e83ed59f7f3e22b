package api

import (
	"net/http"

	"github.com/platewise/recipe-gateway/internal/service"
)

// ErrorResponse is the sole failure shape returned to callers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// unknownErrorMessage is the fallback when a failure carries no usable
// description.
const unknownErrorMessage = "An unknown error occurred"

// normalizeError maps a downstream failure to an HTTP status and a flat error
// body. Invalid input is the caller's fault (400), a search with no hits maps
// to 404, and every other failure kind is reported as a bad gateway. No error
// ever propagates past this point unconverted.
func normalizeError(err error) (int, ErrorResponse) {
	svcErr, ok := service.AsError(err)
	if !ok {
		return http.StatusBadGateway, ErrorResponse{Error: unknownErrorMessage}
	}

	status := http.StatusBadGateway
	switch svcErr.Kind {
	case service.KindInvalidRequest:
		status = http.StatusBadRequest
	case service.KindNoResults:
		status = http.StatusNotFound
	}

	message := svcErr.Message
	if message == "" {
		message = unknownErrorMessage
	}
	return status, ErrorResponse{Error: message}
}
