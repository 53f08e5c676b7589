// Package validation carries recoverable input errors back to the caller
// with enough structure for a UI to highlight the offending field.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a single rejected input
type Error struct {
	// Field names the rejected input, e.g. "amount" or "name"
	Field string

	// PlayerIndex points at the offending player slot when there is one
	PlayerIndex *int

	Message string
}

// New creates an Error not tied to a player slot
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// ForPlayer creates an Error tied to player slot index
func ForPlayer(index int, field, message string) *Error {
	return &Error{Field: field, PlayerIndex: &index, Message: message}
}

func (e *Error) Error() string {
	if e.PlayerIndex != nil {
		return fmt.Sprintf("player %d: %s: %s", *e.PlayerIndex+1, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every rejected input of a single request
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns nil for an empty list so callers can return it directly
func (es Errors) OrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// IsValidation reports whether err is, or wraps, a validation failure
func IsValidation(err error) bool {
	var single *Error
	var many Errors
	return errors.As(err, &single) || errors.As(err, &many)
}
