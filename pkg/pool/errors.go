package pool

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyUser is returned by Acquire when no proxy user is supplied.
	ErrEmptyUser = errors.New("proxy user must not be empty")

	// ErrPoolClosed is returned by Acquire after Close.
	ErrPoolClosed = errors.New("context pool is closed")
)

// IdentityError reports that the impersonation capability could not assume
// the target identity. Impersonator implementations return it so callers can
// tell an identity failure from an engine failure.
type IdentityError struct {
	User string
	Err  error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("cannot assume identity %q: %v", e.User, e.Err)
}

func (e *IdentityError) Unwrap() error {
	return e.Err
}

// ContextCreationError reports that the engine rejected construction of an
// execution context. The pool registers no state for the user when it is
// returned.
type ContextCreationError struct {
	User  string
	Queue string
	Err   error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("creating execution context for user %q on queue %q: %v", e.User, e.Queue, e.Err)
}

func (e *ContextCreationError) Unwrap() error {
	return e.Err
}
