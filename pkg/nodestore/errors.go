package nodestore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a node or config row does not exist.
	ErrNotFound = errors.New("node not found")

	// ErrParentNotFound is returned when creating a node under a missing parent.
	ErrParentNotFound = errors.New("parent node not found")

	// ErrAlreadyExists is returned when creating a duplicate (org, node) pair.
	ErrAlreadyExists = errors.New("node already exists")

	// ErrHasChildren is returned when deleting a node that still has children.
	ErrHasChildren = errors.New("node has child nodes")

	// ErrConcurrentModification is returned when an optimistic version check fails.
	ErrConcurrentModification = errors.New("concurrent config modification detected")
)

// ImmutableFieldError is returned when a patch attempts to change a key
// declared immutable (e.g. team_name).
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field %q is immutable", e.Field)
}

// RoutingConflictError is returned when a routing key is already claimed by
// another team. Code is the per-source reason, e.g. slack_channel_already_mapped.
type RoutingConflictError struct {
	Source string
	Key    string
	Code   string
}

func (e *RoutingConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Key)
}

// IsRoutingConflict reports whether err is a routing-key conflict.
func IsRoutingConflict(err error) bool {
	var rc *RoutingConflictError
	return errors.As(err, &rc)
}
