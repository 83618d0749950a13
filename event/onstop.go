package event

import (
	"fmt"
	"io"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/status"
)

// RunOnStop arranges for fn to run synchronously when the context's owning
// component emits its stopping event. Errors returned by fn, and panics
// raised by it, are routed to the status log sink exactly once and never
// propagate into the platform's event dispatch: a misbehaving cleanup must
// not block the other stop listeners on the same context.
//
// The returned Installed handle can be used to remove the hook before the
// component stops.
func RunOnStop(ctx core.Context, fn func() error) (*Installed, error) {
	var component string
	if ctx != nil && ctx.Component() != nil {
		component = ctx.Component().Name()
	}
	return ForContext(ctx).
		Synchronous().
		WithKinds(core.KindStopping).
		Install(core.ListenerFunc(func(core.Event) {
			defer func() {
				if r := recover(); r != nil {
					status.LogError(fmt.Errorf("panic: %v", r), "cleanup panicked during stop", component)
				}
			}()
			if err := fn(); err != nil {
				status.LogError(err, "cleanup failed during stop", component)
			}
		}))
}

// DisposeOnStop disposes of d when the context's owning component stops.
// Failures are logged, never propagated.
func DisposeOnStop(ctx core.Context, d core.Disposable) (*Installed, error) {
	return RunOnStop(ctx, d.Dispose)
}

// CloseOnStop closes c when the context's owning component stops.
// Failures are logged, never propagated.
func CloseOnStop(ctx core.Context, c io.Closer) (*Installed, error) {
	return RunOnStop(ctx, c.Close)
}
