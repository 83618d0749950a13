package event

import "github.com/ifml-editor-alpha/platformkit/core"

// Installed is a registered filtering listener. It holds an immutable
// snapshot of the configuration it was installed with and forwards matching
// events to the delegate, at most once per event.
type Installed struct {
	delegate core.Listener
	delivery core.Delivery
	sources  map[string]struct{}
	kinds    core.Kind
	sub      core.Subscription
}

// HandleEvent applies the snapshot filter and conditionally forwards the
// event to the delegate. An event passes when its source is in the source
// filter (or the filter is empty) and its kind intersects the kind mask (or
// the mask is empty).
func (in *Installed) HandleEvent(e core.Event) {
	if len(in.sources) > 0 {
		if e.Source == nil {
			return
		}
		if _, ok := in.sources[e.Source.Name()]; !ok {
			return
		}
	}
	if in.kinds != 0 && in.kinds&e.Kind == 0 {
		return
	}
	in.delegate.HandleEvent(e)
}

// Delivery returns the delivery mode the listener was installed with.
func (in *Installed) Delivery() core.Delivery {
	return in.delivery
}

// Remove unregisters the listener. Remove is idempotent.
func (in *Installed) Remove() {
	if in.sub != nil {
		in.sub.Cancel()
	}
}
