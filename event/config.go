package event

import (
	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
)

// Config describes a listener registration. The zero value is not usable;
// start from ForContext.
//
// Config is a value type: configuration methods return modified copies and
// never mutate the receiver or any previously derived Config.
type Config struct {
	ctx      core.Context
	delivery core.Delivery
	sources  map[string]struct{}
	kinds    core.Kind
}

// ForContext returns the initial configuration for a listener attached to
// ctx. Delivery defaults to asynchronous, the source filter defaults to
// exactly the context's owning component, and the kind mask defaults to
// empty (every kind passes).
func ForContext(ctx core.Context) Config {
	c := Config{ctx: ctx, delivery: core.DeliverAsync}
	if ctx != nil && ctx.Component() != nil {
		c.sources = map[string]struct{}{ctx.Component().Name(): {}}
	}
	return c
}

// Synchronous marks the listener for synchronous delivery. Synchronous and
// Asynchronous are mutually exclusive; the last call wins.
func (c Config) Synchronous() Config {
	c.delivery = core.DeliverSync
	return c
}

// Asynchronous marks the listener for asynchronous delivery. Synchronous and
// Asynchronous are mutually exclusive; the last call wins.
func (c Config) Asynchronous() Config {
	c.delivery = core.DeliverAsync
	return c
}

// AllSources clears the source filter: events from every component pass.
func (c Config) AllSources() Config {
	c.sources = nil
	return c
}

// WithSources adds the given components to the source filter. The filter is
// a union: previously added sources remain.
func (c Config) WithSources(components ...core.Component) Config {
	sources := make(map[string]struct{}, len(c.sources)+len(components))
	for name := range c.sources {
		sources[name] = struct{}{}
	}
	for _, comp := range components {
		if comp != nil {
			sources[comp.Name()] = struct{}{}
		}
	}
	c.sources = sources
	return c
}

// WithKinds adds the given kinds to the kind mask. The mask is a union:
// previously added kinds remain. An empty mask means every kind passes.
func (c Config) WithKinds(kinds ...core.Kind) Config {
	for _, k := range kinds {
		c.kinds |= k
	}
	return c
}

// Install validates the configuration, snapshots it, wraps delegate in a
// filtering listener, registers the wrapper with the context's event source,
// and returns it.
//
// Installation fails with CodeInvalidConfig when the kind mask contains
// kinds that the configured delivery mode cannot observe: asynchronous
// listeners never receive the transitional kinds excluded from
// core.AsyncKinds.
func (c Config) Install(delegate core.Listener) (*Installed, error) {
	if c.ctx == nil {
		return nil, errors.New(errors.CodeInvalidInput, "config was not built with ForContext")
	}
	if delegate == nil {
		return nil, errors.New(errors.CodeInvalidInput, "nil delegate listener")
	}
	legal := core.AllKinds
	if c.delivery == core.DeliverAsync {
		legal = core.AsyncKinds
	}
	if illegal := c.kinds &^ legal; illegal != 0 {
		return nil, errors.Newf(errors.CodeInvalidConfig,
			"kinds [%s] cannot be delivered %s", illegal, c.delivery)
	}

	sources := make(map[string]struct{}, len(c.sources))
	for name := range c.sources {
		sources[name] = struct{}{}
	}
	installed := &Installed{
		delegate: delegate,
		delivery: c.delivery,
		sources:  sources,
		kinds:    c.kinds,
	}
	sub, err := c.ctx.Events().Subscribe(installed, c.delivery)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "failed to register listener")
	}
	installed.sub = sub
	return installed, nil
}
