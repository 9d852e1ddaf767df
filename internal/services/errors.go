// Package services contains the application services of the Thesis Ledger
// CLI: submission, review, catalog, verification. Services validate input
// locally, call the backend through the api.Client, and protect view state
// from stale responses.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSuperseded marks a response that arrived after a newer request was
	// issued; callers drop it silently.
	ErrSuperseded = errors.New("response superseded by a newer request")

	// ErrReasonRequired is returned when a rejection is attempted without a
	// reason.
	ErrReasonRequired = errors.New("a rejection reason is required")

	// ErrNoSearchCriteria is returned when a ledger search has no fields.
	ErrNoSearchCriteria = errors.New("provide at least one search criterion")
)

// FieldErrors maps input field names to their validation messages. It is
// returned before any network call is made.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Fields returns the field names in stable order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// AsFieldErrors unwraps err into FieldErrors when it is one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
