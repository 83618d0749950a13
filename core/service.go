package core

import "errors"

var (
	// ErrStopped is returned when an operation is attempted against a
	// context whose owning component has stopped.
	ErrStopped = errors.New("context stopped")

	// ErrClosed is returned when an operation is performed on a closed
	// handle.
	ErrClosed = errors.New("handle closed")
)

// ServiceSource constructs tracking handles against the platform's service
// registry.
type ServiceSource interface {
	// NewHandle returns a new, unopened tracking handle for services
	// registered under the given type name.
	NewHandle(typeName string) (Handle, error)
}

// Handle tracks the availability of a service registered under a single type
// name.
//
// A handle owns an open connection to the service registry between Open and
// Close. Close is idempotent: closing an already-closed handle is a no-op.
type Handle interface {
	// Open starts tracking. Instance reports no service until Open has
	// been called.
	Open() error

	// Close stops tracking and releases the handle's connection to the
	// registry. Close is safe to call more than once.
	Close() error

	// Instance returns the currently registered service instance, if any.
	// The second result is false when no instance is currently registered
	// or the handle is not open.
	Instance() (any, bool)
}
