package tracker

import (
	"reflect"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
)

// TypeName returns the registry type name used for T: the fully qualified
// name of T's type (for interface types, the interface itself).
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Lookup is typed sugar over Cache.Get: it derives the registry type name
// from T and asserts the instance to T. A registered instance that is not a
// T is reported as a conflict.
func Lookup[T any](c *Cache, ctx core.Context) (T, bool, error) {
	var zero T
	inst, ok, err := c.Get(ctx, TypeName[T]())
	if err != nil || !ok {
		return zero, false, err
	}
	t, ok := inst.(T)
	if !ok {
		return zero, false, errors.Newf(errors.CodeConflict,
			"service registered as %q is %T", TypeName[T](), inst)
	}
	return t, true, nil
}
