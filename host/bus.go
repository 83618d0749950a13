package host

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
	"github.com/ifml-editor-alpha/platformkit/status"
)

// bus is the host's lifecycle event source.
type bus struct {
	pool *ants.Pool

	mu   sync.RWMutex
	subs []*subscription

	pending sync.WaitGroup
}

func newBus(pool *ants.Pool) *bus {
	return &bus{pool: pool}
}

// subscription is a single listener registration. Asynchronous
// subscriptions own a serial mailbox: events are appended under qmu and
// drained by at most one worker at a time, which preserves emission order
// per listener without dedicating a goroutine to each.
type subscription struct {
	bus      *bus
	listener core.Listener
	delivery core.Delivery

	qmu      sync.Mutex
	queue    []core.Event
	draining bool
	canceled bool
}

// Cancel implements core.Subscription.
func (s *subscription) Cancel() {
	s.qmu.Lock()
	s.canceled = true
	s.qmu.Unlock()
	s.bus.remove(s)
}

// Subscribe implements core.EventSource.
func (b *bus) Subscribe(l core.Listener, d core.Delivery) (core.Subscription, error) {
	if l == nil {
		return nil, errors.New(errors.CodeInvalidInput, "nil listener")
	}
	s := &subscription{bus: b, listener: l, delivery: d}
	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()
	return s, nil
}

func (b *bus) remove(target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s == target {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// emit delivers an event: inline to every synchronous subscriber in
// subscription order, then into the mailbox of every asynchronous
// subscriber. Asynchronous subscribers never observe kinds outside
// core.AsyncKinds.
func (b *bus) emit(e core.Event) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		if s.delivery == core.DeliverSync {
			deliver(s.listener, e)
		}
	}
	if e.Kind&core.AsyncKinds == 0 {
		return
	}
	for _, s := range subs {
		if s.delivery == core.DeliverAsync {
			s.enqueue(e)
		}
	}
}

func (s *subscription) enqueue(e core.Event) {
	s.qmu.Lock()
	if s.canceled {
		s.qmu.Unlock()
		return
	}
	s.queue = append(s.queue, e)
	s.bus.pending.Add(1)
	if s.draining {
		s.qmu.Unlock()
		return
	}
	s.draining = true
	s.qmu.Unlock()
	if err := s.bus.pool.Submit(s.drain); err != nil {
		// Pool released during shutdown; drop the mailbox.
		s.qmu.Lock()
		s.bus.pending.Add(-len(s.queue))
		s.queue = nil
		s.draining = false
		s.qmu.Unlock()
	}
}

func (s *subscription) drain() {
	for {
		s.qmu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.qmu.Unlock()
			return
		}
		e := s.queue[0]
		s.queue = s.queue[1:]
		s.qmu.Unlock()
		deliver(s.listener, e)
		s.bus.pending.Done()
	}
}

// flush blocks until every queued asynchronous delivery has completed.
func (b *bus) flush() {
	b.pending.Wait()
}

// deliver invokes a listener, recovering panics so a misbehaving listener
// cannot halt dispatch to the remaining ones.
func deliver(l core.Listener, e core.Event) {
	defer func() {
		if r := recover(); r != nil {
			var component string
			if e.Source != nil {
				component = e.Source.Name()
			}
			status.LogError(fmt.Errorf("panic: %v", r),
				fmt.Sprintf("listener panicked handling %s event", e.Kind), component)
		}
	}()
	l.HandleEvent(e)
}
