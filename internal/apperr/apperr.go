// Package apperr defines the error kinds the HTTP layer maps to status codes.
// Services wrap one of these sentinels so handlers can classify failures with
// errors.Is without inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrAuth covers missing, invalid, or expired credentials.
	ErrAuth = errors.New("unauthorized")
	// ErrNotFound covers absent resources and ownership mismatches alike,
	// so non-owners cannot distinguish the two.
	ErrNotFound = errors.New("not found")
	// ErrConflict covers duplicate unique keys.
	ErrConflict = errors.New("conflict")
	// ErrUpstream covers moderation/completion service failures. These must
	// stay distinguishable from both crisis classification and internal bugs.
	ErrUpstream = errors.New("upstream service failed")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func Conflict(what string) error {
	return fmt.Errorf("%w: %s", ErrConflict, what)
}

func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}
