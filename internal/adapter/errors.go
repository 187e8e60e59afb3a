package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrRequestAborted is matched by every error caused by a cancelled call,
	// whatever the reason.
	ErrRequestAborted = errors.New("request aborted")
	// ErrRequestTimeout is the cause of calls stopped by their own timeout.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrUnexpectedPayload is returned when a 2xx body is not JSON, or does
	// not fit the type it is decoded into.
	ErrUnexpectedPayload = errors.New("unexpected response payload")
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// APIError is returned for every non-2xx answer.
type APIError struct {
	Method string
	URL    string

	StatusCode int
	// StatusText is the reason phrase sent by the server, or the standard
	// one when the server sent none.
	StatusText string

	// Message is the "error" field of a JSON error body, if any.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.StatusText)
}

// Unwrap exposes the sentinel matching StatusCode, so that
// errors.Is(err, ErrNotFound) holds for a 404.
func (e *APIError) Unwrap() error {
	return statusErrors[e.StatusCode]
}

// AsAPIError extracts *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
