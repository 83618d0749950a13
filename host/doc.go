// Package host is an in-process implementation of the core platform
// contracts: components with lifecycle states, execution contexts, a
// lifecycle event bus with synchronous and asynchronous delivery, and a
// service registry.
//
// It serves two audiences. Embedding applications that do not run on a full
// component platform can use it as a minimal platform. The helper packages'
// test suites use it as their fixture, the way a filesystem conformance
// suite exercises providers.
//
// # Lifecycle
//
//	h := host.New()
//	defer h.Shutdown()
//
//	c, _ := h.Install("com.example.editor")
//	_ = c.Start()
//	ctx := c.Context()
//	// ... hand ctx to helpers ...
//	_ = c.Stop()
//
// Starting a component emits the starting event (delivered synchronously
// only) followed by started; stopping emits stopping (synchronous only)
// followed by stopped.
//
// # Event Delivery
//
// Synchronous listeners are invoked inline on the emitting goroutine, in
// subscription order. Each asynchronous listener owns a serial mailbox
// drained on a shared goroutine pool, so it observes events in emission
// order; no ordering holds across listeners. A panicking listener is
// recovered and logged and never halts delivery to the others.
package host
