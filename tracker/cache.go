package tracker

import (
	"github.com/hashicorp/go-multierror"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sync/singleflight"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
	"github.com/ifml-editor-alpha/platformkit/event"
)

// Cache memoizes service tracking handles per (context, type name) pair.
// All methods are safe for concurrent use.
type Cache struct {
	handles cmap.ConcurrentMap[string, entry]
	flight  singleflight.Group
	metrics *metrics
}

// entry pairs a cached handle with the stop listener that releases it, so
// tearing the entry down can unregister the listener as well.
type entry struct {
	handle  core.Handle
	release *event.Installed
}

// Option configures a Cache.
type Option func(*Cache)

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{handles: cmap.New[entry]()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cacheKey joins the context identity and the type name. Contexts are
// distinguished by ID, not by pointer, so the key survives interface
// re-wrapping of the same context.
func cacheKey(ctx core.Context, typeName string) string {
	return ctx.ID() + "\x00" + typeName
}

// Get returns the currently available service instance for the pair,
// creating and opening the tracking handle first if this is the pair's first
// request. The boolean result is false when the handle is open but no
// matching service is currently registered; that is not an error.
//
// Handle creation is at-most-once per pair under concurrency: racing callers
// for the same pair share one creation, and exactly one handle is opened.
// When the context's owning component stops, the handle is closed.
func (c *Cache) Get(ctx core.Context, typeName string) (any, bool, error) {
	if ctx == nil {
		return nil, false, errors.New(errors.CodeInvalidInput, "nil context")
	}
	if typeName == "" {
		return nil, false, errors.New(errors.CodeInvalidInput, "empty type name")
	}
	h, err := c.handle(ctx, typeName)
	if err != nil {
		return nil, false, err
	}
	inst, ok := h.Instance()
	return inst, ok, nil
}

func (c *Cache) handle(ctx core.Context, typeName string) (core.Handle, error) {
	key := cacheKey(ctx, typeName)
	if e, ok := c.handles.Get(key); ok {
		c.metrics.hit()
		return e.handle, nil
	}
	c.metrics.miss()
	v, err, _ := c.flight.Do(key, func() (any, error) {
		// A racing flight may have stored the entry between the miss and
		// this closure running.
		if e, ok := c.handles.Get(key); ok {
			return e, nil
		}
		e, err := c.create(ctx, typeName)
		if err != nil {
			return entry{}, err
		}
		c.handles.Set(key, e)
		return e, nil
	})
	if err != nil {
		c.metrics.failure()
		return nil, err
	}
	return v.(entry).handle, nil
}

// create builds and opens a handle, wiring its release to the context's
// stopping event before the handle is opened, mirroring the order the
// platform expects: a handle that was never opened is still safe to close.
// On failure nothing stays behind, neither a handle nor a listener.
func (c *Cache) create(ctx core.Context, typeName string) (entry, error) {
	h, err := ctx.Services().NewHandle(typeName)
	if err != nil {
		return entry{}, errors.Wrapf(err, errors.CodeUnavailable,
			"failed to construct tracking handle for %q", typeName)
	}
	release, err := event.ForContext(ctx).
		Synchronous().
		WithKinds(core.KindStopping).
		Install(core.ListenerFunc(func(core.Event) {
			_ = h.Close()
		}))
	if err != nil {
		_ = h.Close()
		return entry{}, errors.Wrapf(err, errors.CodeUnavailable,
			"failed to install release listener for %q", typeName)
	}
	if err := h.Open(); err != nil {
		release.Remove()
		_ = h.Close()
		return entry{}, errors.Wrapf(err, errors.CodeUnavailable,
			"failed to open tracking handle for %q", typeName)
	}
	return entry{handle: h, release: release}, nil
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	return c.handles.Count()
}

// Close tears the cache down: every cached handle is closed and its release
// listener unregistered, then the store is cleared. Handle close is
// idempotent, so handles already released by a component stop are
// unaffected. Close failures are collected and returned together.
func (c *Cache) Close() error {
	var result *multierror.Error
	for item := range c.handles.IterBuffered() {
		item.Val.release.Remove()
		if err := item.Val.handle.Close(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, errors.CodeInternal,
				"failed to close handle %q", item.Key))
		}
	}
	c.handles.Clear()
	return result.ErrorOrNil()
}
