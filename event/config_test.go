package event_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
	"github.com/ifml-editor-alpha/platformkit/event"
	"github.com/ifml-editor-alpha/platformkit/host"
)

// recorder collects delivered events.
type recorder struct {
	mu     sync.Mutex
	events []core.Event
}

func (r *recorder) HandleEvent(e core.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []core.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]core.Kind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// startComponent installs and starts a named component.
func startComponent(t *testing.T, h *host.Host, name string) *host.Component {
	t.Helper()
	c, err := h.Install(name)
	require.NoError(t, err)
	require.NoError(t, c.Start())
	return c
}

func TestInstall_RequiresForContext(t *testing.T) {
	_, err := event.Config{}.Install(&recorder{})

	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestInstall_RequiresDelegate(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c := startComponent(t, h, "com.example.a")

	_, err := event.ForContext(c.Context()).Install(nil)

	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestInstall_AsyncRejectsSyncOnlyKinds(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c := startComponent(t, h, "com.example.a")

	tests := []struct {
		name string
		kind core.Kind
	}{
		{"starting", core.KindStarting},
		{"stopping", core.KindStopping},
		{"lazy activation", core.KindLazyActivation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := event.ForContext(c.Context()).
				Asynchronous().
				WithKinds(tt.kind).
				Install(&recorder{})

			require.Error(t, err)
			require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestInstall_SyncAcceptsEveryKind(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c := startComponent(t, h, "com.example.a")

	in, err := event.ForContext(c.Context()).
		Synchronous().
		WithKinds(core.KindStarting, core.KindStopping, core.KindLazyActivation).
		Install(&recorder{})

	require.NoError(t, err)
	require.Equal(t, core.DeliverSync, in.Delivery())
	in.Remove()
}

func TestForContext_DefaultsToOwningComponent(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")

	r := &recorder{}
	in, err := event.ForContext(a.Context()).Synchronous().Install(r)
	require.NoError(t, err)
	defer in.Remove()

	// Events about another component must not be forwarded.
	startComponent(t, h, "com.example.b")
	require.Empty(t, r.kinds())

	// Events about the owning component are.
	require.NoError(t, a.Stop())
	require.Equal(t, []core.Kind{core.KindStopping, core.KindStopped}, r.kinds())
}

func TestAllSources_ClearsSourceFilter(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")

	r := &recorder{}
	in, err := event.ForContext(a.Context()).
		Synchronous().
		AllSources().
		WithKinds(core.KindStarted).
		Install(r)
	require.NoError(t, err)
	defer in.Remove()

	startComponent(t, h, "com.example.b")

	require.Equal(t, []core.Kind{core.KindStarted}, r.kinds())
}

func TestWithSources_IsAUnion(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")
	b, err := h.Install("com.example.b")
	require.NoError(t, err)

	r := &recorder{}
	in, err := event.ForContext(a.Context()).
		Synchronous().
		WithSources(b).
		WithKinds(core.KindStarted, core.KindStopped).
		Install(r)
	require.NoError(t, err)
	defer in.Remove()

	require.NoError(t, b.Start())
	require.NoError(t, b.Stop())
	require.NoError(t, a.Stop())

	// Both a and b pass the filter; kinds outside the mask do not.
	require.Equal(t, []core.Kind{core.KindStarted, core.KindStopped, core.KindStopped}, r.kinds())
}

func TestConfig_DerivedCopiesDoNotAffectBase(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")

	base := event.ForContext(a.Context()).Synchronous()

	// Deriving a narrow configuration must leave the base untouched.
	narrowed := base.WithKinds(core.KindStopping)

	broad := &recorder{}
	narrow := &recorder{}
	inBroad, err := base.Install(broad)
	require.NoError(t, err)
	defer inBroad.Remove()
	inNarrow, err := narrowed.Install(narrow)
	require.NoError(t, err)
	defer inNarrow.Remove()

	require.NoError(t, a.Stop())

	require.Equal(t, []core.Kind{core.KindStopping, core.KindStopped}, broad.kinds())
	require.Equal(t, []core.Kind{core.KindStopping}, narrow.kinds())
}

func TestInstall_SnapshotSurvivesLaterDerivation(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")
	b, err := h.Install("com.example.b")
	require.NoError(t, err)

	cfg := event.ForContext(a.Context()).Synchronous().WithKinds(core.KindStarted)
	r := &recorder{}
	in, err := cfg.Install(r)
	require.NoError(t, err)
	defer in.Remove()

	// Widening the configuration after installation must not change the
	// installed listener.
	cfg = cfg.AllSources()

	require.NoError(t, b.Start())
	require.Empty(t, r.kinds())
}

func TestAsynchronousDelivery(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")

	r := &recorder{}
	in, err := event.ForContext(a.Context()).
		AllSources().
		WithKinds(core.KindStarted, core.KindStopped).
		Install(r)
	require.NoError(t, err)
	defer in.Remove()
	require.Equal(t, core.DeliverAsync, in.Delivery())

	b := startComponent(t, h, "com.example.b")
	require.NoError(t, b.Stop())
	h.Flush()

	require.Equal(t, []core.Kind{core.KindStarted, core.KindStopped}, r.kinds())
}

func TestRemove_StopsDelivery(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	a := startComponent(t, h, "com.example.a")

	r := &recorder{}
	in, err := event.ForContext(a.Context()).Synchronous().Install(r)
	require.NoError(t, err)

	in.Remove()
	in.Remove() // idempotent

	require.NoError(t, a.Stop())
	require.Empty(t, r.kinds())
}
