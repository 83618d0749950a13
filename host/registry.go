package host

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
)

// registry is the host's service registry: at most one instance per type
// name.
type registry struct {
	services cmap.ConcurrentMap[string, any]
}

func newRegistry() *registry {
	return &registry{services: cmap.New[any]()}
}

// Registration identifies a registered service and allows its removal.
type Registration struct {
	reg      *registry
	typeName string
}

// Unregister removes the service from the registry. Handles tracking the
// type name observe the removal immediately.
func (r Registration) Unregister() {
	if r.reg != nil {
		r.reg.services.Remove(r.typeName)
	}
}

// Register publishes a service instance under a type name. Registering a
// type name that already has an instance is a conflict.
func (h *Host) Register(typeName string, instance any) (Registration, error) {
	if typeName == "" {
		return Registration{}, errors.New(errors.CodeInvalidInput, "empty type name")
	}
	if instance == nil {
		return Registration{}, errors.New(errors.CodeInvalidInput, "nil service instance")
	}
	if !h.registry.services.SetIfAbsent(typeName, instance) {
		return Registration{}, errors.Newf(errors.CodeAlreadyExists,
			"service already registered for %q", typeName)
	}
	return Registration{reg: h.registry, typeName: typeName}, nil
}

// handle tracks the registry entry for one type name.
// Open and Close are idempotent; a closed handle reports no instance and
// cannot be reopened.
type handle struct {
	reg      *registry
	typeName string

	mu     sync.Mutex
	opened bool
	closed bool
}

func (h *handle) Open() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return core.ErrClosed
	}
	h.opened = true
	return nil
}

func (h *handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

func (h *handle) Instance() (any, bool) {
	h.mu.Lock()
	open := h.opened && !h.closed
	h.mu.Unlock()
	if !open {
		return nil, false
	}
	return h.reg.services.Get(h.typeName)
}

// serviceSource constructs handles on behalf of one context.
type serviceSource struct {
	ctx *contextImpl
}

// NewHandle implements core.ServiceSource. Construction fails once the
// owning component is no longer running.
func (s serviceSource) NewHandle(typeName string) (core.Handle, error) {
	if typeName == "" {
		return nil, errors.New(errors.CodeInvalidInput, "empty type name")
	}
	switch s.ctx.component.State() {
	case core.StateStarting, core.StateActive:
	default:
		return nil, errors.Wrapf(core.ErrStopped, errors.CodeStopped,
			"component %q is not running", s.ctx.component.Name())
	}
	return &handle{reg: s.ctx.component.host.registry, typeName: typeName}, nil
}
