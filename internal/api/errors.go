package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the backend rejected the caller's identity.
	ErrUnauthorized = errors.New("unauthorized")
)

// DuplicateError is the distinguished 409-class upload rejection. The server
// message is surfaced verbatim to the user.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	if e.Message == "" {
		return "duplicate thesis detected"
	}
	return e.Message
}

// APIError is any other non-success response, carrying the HTTP status and
// the server-provided message when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}
