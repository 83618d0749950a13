package core

import "io"

// State represents the lifecycle state of a component.
type State int

const (
	// StateInstalled indicates the component is known to the platform but
	// not yet resolved.
	StateInstalled State = iota
	// StateResolved indicates the component's requirements are satisfied
	// and it may be started.
	StateResolved
	// StateStarting indicates the component is in the process of starting.
	StateStarting
	// StateActive indicates the component is running.
	StateActive
	// StateStopping indicates the component is in the process of stopping.
	StateStopping
	// StateUninstalled indicates the component has been removed from the
	// platform.
	StateUninstalled
)

// String returns a string representation of the State.
func (s State) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateResolved:
		return "resolved"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StateStopping:
		return "stopping"
	case StateUninstalled:
		return "uninstalled"
	default:
		return "unknown"
	}
}

// Component is a named unit of functionality managed by the platform.
//
// Component identity is its name: the platform guarantees at most one
// component per name, and event filtering compares components by name.
type Component interface {
	// Name returns the unique name of the component.
	Name() string

	// State returns the current lifecycle state of the component.
	State() State
}

// EntryProvider is an optional Component capability giving access to static
// entries (files shipped with the component, such as configuration defaults).
//
// Use type assertion to check if a component provides entries:
//
//	if ep, ok := component.(core.EntryProvider); ok {
//	    rc, err := ep.Entry(".options")
//	}
type EntryProvider interface {
	// Entry opens the named entry for reading. The returned reader must be
	// closed when no longer needed. If the entry does not exist, Entry
	// returns an error satisfying errors.Is(err, fs.ErrNotExist).
	Entry(path string) (io.ReadCloser, error)
}

// Context is a component's execution context. It is handed to a component
// when the component starts and remains valid until the component stops.
type Context interface {
	// ID returns a stable identifier unique to this context for the
	// lifetime of the process. Helper packages use it as cache-key
	// material.
	ID() string

	// Component returns the component that owns this context.
	Component() Component

	// Events returns the lifecycle event source this context is attached to.
	// Events from every component managed by the same platform are visible
	// through it.
	Events() EventSource

	// Services returns the service source used to construct tracking
	// handles against the platform's service registry.
	Services() ServiceSource
}

// Disposable is implemented by values holding resources that must be
// released exactly once when their owning component stops.
type Disposable interface {
	// Dispose releases the resources held by the value.
	Dispose() error
}
