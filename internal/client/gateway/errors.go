package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses, including expired or revoked
	// refresh tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response carrying the backend's message. It is
// propagated to callers unmodified so the UI layer can surface it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}
