// Package adapt provides capability adaptation: asking a value for a view of
// itself under a different interface or type.
//
// Adaptation follows the shape of errors.As. A value either is the requested
// type already, or implements Adaptable and can populate a pointer to the
// requested type on demand:
//
//	if ws, ok := adapt.To[*workspace.Workspace](resource); ok {
//	    // resource exposed a workspace view of itself
//	}
package adapt

// Adaptable is implemented by values that can provide views of themselves as
// other types.
type Adaptable interface {
	// As attempts to adapt the receiver to the type pointed to by target,
	// which is always a non-nil pointer. It reports whether the adaptation
	// succeeded, in which case *target has been set.
	As(target any) bool
}

// To returns the T view of v. It first tries a direct type assertion, then
// the Adaptable capability. A nil v adapts to nothing.
func To[T any](v any) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	if t, ok := v.(T); ok {
		return t, true
	}
	if a, ok := v.(Adaptable); ok {
		var t T
		if a.As(&t) {
			return t, true
		}
	}
	return zero, false
}
