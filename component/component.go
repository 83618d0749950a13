// Package component has conveniences for working with platform components:
// opening static entries and binding resource cleanup to component stop.
package component

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
	"github.com/ifml-editor-alpha/platformkit/event"
)

// OpenEntry opens a static entry shipped with the component.
//
// It fails with errors.CodeUnsupported when the component does not provide
// entries and errors.CodeNotFound when the entry does not exist.
func OpenEntry(c core.Component, path string) (io.ReadCloser, error) {
	if c == nil {
		return nil, errors.New(errors.CodeInvalidInput, "component must not be nil")
	}
	ep, ok := c.(core.EntryProvider)
	if !ok {
		return nil, errors.Newf(errors.CodeUnsupported, "component %s does not provide entries", c.Name())
	}
	rc, err := ep.Entry(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.CodeNotFound, "component %s has no entry %s", c.Name(), path)
		}
		return nil, errors.Wrapf(err, errors.CodeIO, "opening entry %s of component %s", path, c.Name())
	}
	return rc, nil
}

// DisposeOnStop disposes the value when the context's component stops.
func DisposeOnStop(ctx core.Context, d core.Disposable) (*event.Installed, error) {
	return event.DisposeOnStop(ctx, d)
}

// CloseOnStop closes the value when the context's component stops.
func CloseOnStop(ctx core.Context, c io.Closer) (*event.Installed, error) {
	return event.CloseOnStop(ctx, c)
}
