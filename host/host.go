package host

import (
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/panjf2000/ants/v2"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
)

// Host owns a set of components, their lifecycle event bus, and the service
// registry. All methods are safe for concurrent use.
type Host struct {
	components cmap.ConcurrentMap[string, *Component]
	registry   *registry
	bus        *bus
	pool       *ants.Pool
}

// New returns a running host with an empty component set.
func New() *Host {
	// Unbounded pool: drain tasks are short-lived, one per active mailbox.
	pool, _ := ants.NewPool(-1)
	return &Host{
		components: cmap.New[*Component](),
		registry:   newRegistry(),
		bus:        newBus(pool),
		pool:       pool,
	}
}

// InstallOption configures a component at install time.
type InstallOption func(*Component)

// WithEntries backs the component's static entries with a filesystem. The
// component then satisfies the core.EntryProvider capability for the files
// it contains.
func WithEntries(bfs billy.Filesystem) InstallOption {
	return func(c *Component) {
		c.entries = bfs
	}
}

// Install adds a component under a unique name. The new component is
// resolved and may be started; installed and resolved events are emitted.
func (h *Host) Install(name string, opts ...InstallOption) (*Component, error) {
	if name == "" {
		return nil, errors.New(errors.CodeInvalidInput, "empty component name")
	}
	c := &Component{host: h, name: name, state: core.StateInstalled}
	for _, opt := range opts {
		opt(c)
	}
	if !h.components.SetIfAbsent(name, c) {
		return nil, errors.Newf(errors.CodeAlreadyExists, "component %q already installed", name)
	}
	h.bus.emit(core.Event{Kind: core.KindInstalled, Source: c, Time: time.Now()})
	c.mu.Lock()
	c.state = core.StateResolved
	c.mu.Unlock()
	h.bus.emit(core.Event{Kind: core.KindResolved, Source: c, Time: time.Now()})
	return c, nil
}

// Component returns the installed component with the given name.
func (h *Host) Component(name string) (*Component, bool) {
	return h.components.Get(name)
}

// Ensure returns an error unless a component with the given name is
// installed.
func (h *Host) Ensure(name string) error {
	if _, ok := h.components.Get(name); !ok {
		return errors.Newf(errors.CodeNotFound, "component %q not found", name)
	}
	return nil
}

// Flush blocks until every queued asynchronous event delivery has completed.
// Intended for tests and orderly shutdown.
func (h *Host) Flush() {
	h.bus.flush()
}

// Shutdown stops every active component, waits for queued asynchronous
// deliveries, and releases the dispatch pool. Stop failures are collected
// and returned together.
func (h *Host) Shutdown() error {
	var result *multierror.Error
	for item := range h.components.IterBuffered() {
		c := item.Val
		if c.State() == core.StateActive {
			if err := c.Stop(); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	h.bus.flush()
	h.pool.Release()
	return result.ErrorOrNil()
}

// Component is a named unit managed by a Host. It implements core.Component,
// and core.EntryProvider when installed with entries.
type Component struct {
	host    *Host
	name    string
	entries billy.Filesystem

	mu    sync.Mutex
	state core.State
	ctx   *contextImpl
}

// Name implements core.Component.
func (c *Component) Name() string { return c.name }

// State implements core.Component.
func (c *Component) State() core.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Entry implements core.EntryProvider over the component's entry
// filesystem. Missing entries (and components installed without entries)
// report fs.ErrNotExist.
func (c *Component) Entry(path string) (io.ReadCloser, error) {
	if c.entries == nil {
		return nil, &fs.PathError{Op: "entry", Path: path, Err: fs.ErrNotExist}
	}
	f, err := c.entries.Open(path)
	if err != nil {
		return nil, &fs.PathError{Op: "entry", Path: path, Err: err}
	}
	return f, nil
}

// Context returns the component's current execution context, valid while
// the component is starting or active.
func (c *Component) Context() core.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx == nil {
		return nil
	}
	return c.ctx
}

// Start activates the component: a fresh execution context is created, the
// starting event is emitted (synchronous listeners only), the component
// becomes active, and the started event is emitted.
func (c *Component) Start() error {
	c.mu.Lock()
	if c.state != core.StateResolved {
		state := c.state
		c.mu.Unlock()
		return errors.Newf(errors.CodeConflict, "cannot start component %q in state %s", c.name, state)
	}
	c.state = core.StateStarting
	c.ctx = &contextImpl{id: uuid.NewString(), component: c}
	c.mu.Unlock()

	c.host.bus.emit(core.Event{Kind: core.KindStarting, Source: c, Time: time.Now()})

	c.mu.Lock()
	c.state = core.StateActive
	c.mu.Unlock()
	c.host.bus.emit(core.Event{Kind: core.KindStarted, Source: c, Time: time.Now()})
	return nil
}

// Stop deactivates the component. The stopping event runs synchronous
// listeners inline, so shutdown hooks (handle release, disposal) have
// completed by the time Stop returns; the stopped event follows. The
// component returns to the resolved state and its context becomes invalid.
func (c *Component) Stop() error {
	c.mu.Lock()
	if c.state != core.StateActive {
		state := c.state
		c.mu.Unlock()
		return errors.Newf(errors.CodeConflict, "cannot stop component %q in state %s", c.name, state)
	}
	c.state = core.StateStopping
	c.mu.Unlock()

	c.host.bus.emit(core.Event{Kind: core.KindStopping, Source: c, Time: time.Now()})

	c.mu.Lock()
	c.state = core.StateResolved
	c.ctx = nil
	c.mu.Unlock()
	c.host.bus.emit(core.Event{Kind: core.KindStopped, Source: c, Time: time.Now()})
	return nil
}

// contextImpl implements core.Context.
type contextImpl struct {
	id        string
	component *Component
}

func (ctx *contextImpl) ID() string                   { return ctx.id }
func (ctx *contextImpl) Component() core.Component    { return ctx.component }
func (ctx *contextImpl) Events() core.EventSource     { return ctx.component.host.bus }
func (ctx *contextImpl) Services() core.ServiceSource { return serviceSource{ctx: ctx} }
