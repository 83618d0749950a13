package component_test

import (
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/ifml-editor-alpha/platformkit/component"
	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
	"github.com/ifml-editor-alpha/platformkit/host"
)

// bareComponent implements core.Component without the entries capability.
type bareComponent struct{}

func (bareComponent) Name() string      { return "com.example.bare" }
func (bareComponent) State() core.State { return core.StateActive }

func TestOpenEntry(t *testing.T) {
	bfs := memfs.New()
	f, err := bfs.Create("about.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c, err := h.Install("com.example.a", host.WithEntries(bfs))
	require.NoError(t, err)

	rc, err := component.OpenEntry(c, "about.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "hello", string(data))
}

func TestOpenEntry_MissingEntry(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c, err := h.Install("com.example.a", host.WithEntries(memfs.New()))
	require.NoError(t, err)

	_, err = component.OpenEntry(c, "missing.txt")

	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestOpenEntry_NoEntrySupport(t *testing.T) {
	_, err := component.OpenEntry(bareComponent{}, "about.txt")

	require.Error(t, err)
	require.Equal(t, errors.CodeUnsupported, errors.GetCode(err))
}

func TestOpenEntry_NilComponent(t *testing.T) {
	_, err := component.OpenEntry(nil, "about.txt")

	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

type tracked struct {
	disposed bool
}

func (d *tracked) Dispose() error {
	d.disposed = true
	return nil
}

func TestDisposeOnStop(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c, err := h.Install("com.example.a")
	require.NoError(t, err)
	require.NoError(t, c.Start())

	d := &tracked{}
	_, err = component.DisposeOnStop(c.Context(), d)
	require.NoError(t, err)

	require.NoError(t, c.Stop())
	require.True(t, d.disposed)
}

type trackedCloser struct {
	closed bool
}

func (c *trackedCloser) Close() error {
	c.closed = true
	return nil
}

func TestCloseOnStop(t *testing.T) {
	h := host.New()
	defer func() { _ = h.Shutdown() }()
	c, err := h.Install("com.example.a")
	require.NoError(t, err)
	require.NoError(t, c.Start())

	cl := &trackedCloser{}
	_, err = component.CloseOnStop(c.Context(), cl)
	require.NoError(t, err)

	require.NoError(t, c.Stop())
	require.True(t, cl.closed)
}
