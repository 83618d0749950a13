package core

import (
	"strings"
	"time"
)

// Kind is a bitmask of lifecycle event kinds. A single event carries exactly
// one kind; masks combining several kinds are used for filtering.
type Kind uint32

const (
	// KindInstalled signals that a component has been installed.
	KindInstalled Kind = 1 << iota
	// KindResolved signals that a component has been resolved.
	KindResolved
	// KindLazyActivation signals that a lazily activated component is about
	// to be activated on demand. Delivered synchronously only.
	KindLazyActivation
	// KindStarting signals that a component is about to start.
	// Delivered synchronously only.
	KindStarting
	// KindStarted signals that a component has started.
	KindStarted
	// KindStopping signals that a component is about to stop.
	// Delivered synchronously only.
	KindStopping
	// KindStopped signals that a component has stopped.
	KindStopped
	// KindUpdated signals that a component has been updated in place.
	KindUpdated
	// KindUnresolved signals that a component is no longer resolved.
	KindUnresolved
	// KindUninstalled signals that a component has been uninstalled.
	KindUninstalled

	kindLimit
)

// AllKinds is the mask of every event kind, all of which are legal for
// synchronous delivery.
const AllKinds = kindLimit - 1

// AsyncKinds is the mask of event kinds legal for asynchronous delivery.
// The transitional kinds (Starting, Stopping, LazyActivation) announce a
// state change that is still in progress when the event is emitted; by the
// time an asynchronous listener would observe them the transition has
// completed, so they are restricted to synchronous delivery.
const AsyncKinds = AllKinds &^ (KindStarting | KindStopping | KindLazyActivation)

var kindNames = map[Kind]string{
	KindInstalled:      "installed",
	KindResolved:       "resolved",
	KindLazyActivation: "lazy-activation",
	KindStarting:       "starting",
	KindStarted:        "started",
	KindStopping:       "stopping",
	KindStopped:        "stopped",
	KindUpdated:        "updated",
	KindUnresolved:     "unresolved",
	KindUninstalled:    "uninstalled",
}

// String returns the names of the kinds set in k, joined by "|".
func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for bit := KindInstalled; bit < kindLimit; bit <<= 1 {
		if k&bit != 0 {
			parts = append(parts, kindNames[bit])
		}
	}
	if len(parts) == 0 {
		return "invalid"
	}
	return strings.Join(parts, "|")
}

// Event is a lifecycle event emitted by the platform.
type Event struct {
	// Kind is the single event kind this event carries.
	Kind Kind

	// Source is the component the event is about.
	Source Component

	// Time is when the platform emitted the event.
	Time time.Time
}

// Listener receives lifecycle events.
//
// A listener registered for synchronous delivery runs on the goroutine
// emitting the event and must return promptly. A listener registered for
// asynchronous delivery runs on the platform's dispatch machinery.
type Listener interface {
	// HandleEvent is invoked once per delivered event.
	HandleEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// HandleEvent calls f(e).
func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Delivery selects how the platform delivers events to a listener.
type Delivery int

const (
	// DeliverAsync delivers events on the platform's dispatch machinery,
	// preserving emission order per listener.
	DeliverAsync Delivery = iota
	// DeliverSync delivers events inline on the goroutine that emits them,
	// in subscription order.
	DeliverSync
)

// String returns a string representation of the Delivery mode.
func (d Delivery) String() string {
	if d == DeliverSync {
		return "sync"
	}
	return "async"
}

// Subscription identifies an active listener registration.
type Subscription interface {
	// Cancel removes the registration. Cancel is idempotent; events already
	// queued for asynchronous delivery may still be delivered after Cancel
	// returns.
	Cancel()
}

// EventSource registers listeners for lifecycle events.
//
// Synchronous listeners observe every kind; asynchronous listeners never
// observe the kinds excluded from AsyncKinds. Events are delivered to each
// listener in the order the platform emits them; no ordering holds across
// distinct listeners.
type EventSource interface {
	// Subscribe registers a listener with the given delivery mode and
	// returns its subscription.
	Subscribe(l Listener, d Delivery) (Subscription, error)
}
