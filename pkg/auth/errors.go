package auth

import (
	"errors"
	"fmt"
)

// Error kinds surfaced as machine-readable codes on 401/403 responses.
const (
	ErrKindMissingToken       = "missing_token"
	ErrKindInvalidToken       = "invalid_token"
	ErrKindExpired            = "expired"
	ErrKindInsufficientPerm   = "insufficient_permission"
	ErrKindScopeMissing       = "scope_missing"
	ErrKindJTINotAllowlisted  = "jti_not_allowlisted"
)

// Error is an authentication or authorization failure with a stable code.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates an auth error with the given kind.
func NewError(kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, defaulting to invalid_token.
func KindOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ErrKindInvalidToken
}

// IsAuthError reports whether err is an auth error.
func IsAuthError(err error) bool {
	var ae *Error
	return errors.As(err, &ae)
}
