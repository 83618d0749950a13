// Package event configures and installs filtered lifecycle-event listeners.
//
// A Config is an immutable configuration value: every configuration call
// returns a modified copy, and Install snapshots the configuration by value,
// so building further configurations from a Config can never retroactively
// change a listener that was already installed.
//
// Usage:
//
//	installed, err := event.ForContext(ctx).
//	    Synchronous().
//	    WithSources(aComponent, anotherComponent).
//	    WithKinds(core.KindStarting, core.KindStopping).
//	    Install(myListener)
//
// A fresh Config listens asynchronously, only to events about the context's
// own component, and to every event kind. AllSources clears the source
// filter; WithKinds narrows the kinds. The combination of asynchronous
// delivery with a kind mask containing synchronous-only kinds is a
// configuration error, detected at Install time.
//
// The package also provides the standard shutdown consumers RunOnStop,
// DisposeOnStop, and CloseOnStop, which run cleanup when the context's
// component stops and route any failure to the status log sink instead of
// letting it escape into the platform's dispatch machinery.
package event
