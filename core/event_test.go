package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"zero", 0, "none"},
		{"single", KindStarted, "started"},
		{"combined", KindStarting | KindStopping, "starting|stopping"},
		{"all transitional", KindStarting | KindStopping | KindLazyActivation, "lazy-activation|starting|stopping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestAllKinds_CoversEveryKind(t *testing.T) {
	kinds := []Kind{
		KindInstalled,
		KindResolved,
		KindLazyActivation,
		KindStarting,
		KindStarted,
		KindStopping,
		KindStopped,
		KindUpdated,
		KindUnresolved,
		KindUninstalled,
	}

	var union Kind
	for _, k := range kinds {
		require.NotZero(t, AllKinds&k, "AllKinds must include %s", k)
		union |= k
	}
	require.Equal(t, AllKinds, union)
}

func TestAsyncKinds_ExcludesTransitionalKinds(t *testing.T) {
	require.Zero(t, AsyncKinds&KindStarting)
	require.Zero(t, AsyncKinds&KindStopping)
	require.Zero(t, AsyncKinds&KindLazyActivation)

	require.NotZero(t, AsyncKinds&KindStarted)
	require.NotZero(t, AsyncKinds&KindStopped)
	require.NotZero(t, AsyncKinds&KindInstalled)
}

func TestDelivery_String(t *testing.T) {
	require.Equal(t, "async", DeliverAsync.String())
	require.Equal(t, "sync", DeliverSync.String())
}

func TestListenerFunc_HandleEvent(t *testing.T) {
	var got Event
	l := ListenerFunc(func(e Event) { got = e })

	l.HandleEvent(Event{Kind: KindStarted})

	require.Equal(t, KindStarted, got.Kind)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateInstalled, "installed"},
		{StateResolved, "resolved"},
		{StateStarting, "starting"},
		{StateActive, "active"},
		{StateStopping, "stopping"},
		{StateUninstalled, "uninstalled"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.state.String())
	}
}
