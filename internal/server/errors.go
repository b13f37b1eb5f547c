// Package server provides the HTTP front door of the resume analyzer: the
// index page, static files and the two upstream proxy endpoints.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/upstream"
)

// ErrNotConfigured indicates an endpoint whose upstream API key is unset.
type ErrNotConfigured struct {
	Service string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s API key not configured", e.Service)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch e := classify(err).(type) {
	case *upstream.APIError:
		return forwardedStatus(e.StatusCode)
	case *upstream.MalformedResponseError, *types.DecodeError, *types.ValidationError, *ErrNotConfigured:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the client-facing message for err. Known errors carry
// their own message; anything else is prefixed with fallback.
func ErrorMessage(err error, fallback string) string {
	if known := classify(err); known != nil {
		return known.Error()
	}
	return fmt.Sprintf("%s: %v", fallback, err)
}

// classify returns the first known error in err's chain, or nil.
func classify(err error) error {
	var (
		apiErr        *upstream.APIError
		malformedErr  *upstream.MalformedResponseError
		decodeErr     *types.DecodeError
		validationErr *types.ValidationError
		notConfigured *ErrNotConfigured
	)

	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &malformedErr):
		return malformedErr
	case errors.As(err, &decodeErr):
		return decodeErr
	case errors.As(err, &validationErr):
		return validationErr
	case errors.As(err, &notConfigured):
		return notConfigured
	default:
		return nil
	}
}

// forwardedStatus keeps an upstream status when it can carry a final
// response body. Informational and out-of-range codes become 502.
func forwardedStatus(code int) int {
	if code < 200 || code > 599 {
		return http.StatusBadGateway
	}
	return code
}
