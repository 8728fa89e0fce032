package backend

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnsuccessful is matched by every *APIError, i.e. any response whose
	// envelope carried success=false.
	ErrUnsuccessful = constError("backend reported failure")

	// ErrMalformedResponse indicates a body that is not a valid response envelope.
	ErrMalformedResponse = constError("malformed backend response")

	// ErrInvalidBaseURL is returned by NewClient for unusable base URLs.
	ErrInvalidBaseURL = constError("invalid backend base URL")
)

// APIError is a logical failure reported by the backend in its response
// envelope ({"success": false, "error": "..."}).
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Endpoint, ErrUnsuccessful, e.StatusCode)
	}
	return e.Message
}

// Unwrap lets errors.Is(err, ErrUnsuccessful) match any APIError.
func (e *APIError) Unwrap() error { return ErrUnsuccessful }

// Message extracts the backend-reported message from err. The second return
// value is false when err is not a logical backend failure or carries no text.
func Message(err error) (string, bool) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message == "" {
		return "", false
	}
	return apiErr.Message, true
}
