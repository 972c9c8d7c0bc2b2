package gelato

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller misuse. These signal programming errors and are
// meant to surface during development, not to be retried.
var (
	// ErrMissingState indicates an element that the constructor should have
	// created is absent (e.g. reading the title of a menu without banner text).
	ErrMissingState = errors.New("missing state")

	// ErrInvalidOperation indicates an operation that is not valid for the
	// current state, such as selecting an index in an empty menu.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNoHost is returned when a host call is needed before Init set one.
	ErrNoHost = errors.New("no host configured")
)

// HostError represents a failure inside the host runtime (movie missing,
// renderer failed, device unavailable). Callers usually cannot recover from
// these at the menu level.
type HostError struct {
	Op  string // Operation that failed (e.g., "load_scaleform")
	Err error  // Underlying error
}

func (e *HostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gelato: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gelato: %s", e.Op)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError creates a new host error.
func NewHostError(op string, err error) *HostError {
	return &HostError{Op: op, Err: err}
}

// IsHostError checks if an error is a host error.
func IsHostError(err error) bool {
	var hostErr *HostError
	return errors.As(err, &hostErr)
}

func invalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}
