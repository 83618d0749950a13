package adapt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
}

// view is the alternate representation widgets can adapt to.
type view struct {
	label string
}

// adaptableWidget provides a view of itself on request.
type adaptableWidget struct {
	widget
}

func (w *adaptableWidget) As(target any) bool {
	if v, ok := target.(*view); ok {
		*v = view{label: w.name}
		return true
	}
	return false
}

func TestTo_DirectAssertion(t *testing.T) {
	w := &widget{name: "direct"}

	got, ok := To[*widget](w)

	require.True(t, ok)
	require.Same(t, w, got)
}

func TestTo_ViaAdaptable(t *testing.T) {
	w := &adaptableWidget{widget{name: "adapted"}}

	got, ok := To[view](w)

	require.True(t, ok)
	require.Equal(t, "adapted", got.label)
}

func TestTo_AdaptableRefusesUnknownType(t *testing.T) {
	w := &adaptableWidget{widget{name: "adapted"}}

	_, ok := To[string](w)

	require.False(t, ok)
}

func TestTo_PlainValueDoesNotAdapt(t *testing.T) {
	_, ok := To[view](&widget{name: "plain"})

	require.False(t, ok)
}

func TestTo_NilValue(t *testing.T) {
	_, ok := To[*widget](nil)

	require.False(t, ok)
}
