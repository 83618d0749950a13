// Package workspace provides virtual-filesystem helpers for project-like
// resource trees, backed by go-billy filesystems.
//
// A Workspace wraps a billy.Filesystem and layers on the conveniences the
// rest of the module needs: existence checks, folder-hierarchy creation,
// case-insensitive member lookup and case-variant resolution, charset
// resolution with inheritance up the container hierarchy, and charset-aware
// readers and writers.
//
// # Backends
//
//	ws := workspace.NewMemory()          // memfs, for tests and scratch trees
//	ws := workspace.NewLocal("/work")    // osfs rooted at a directory
//	ws := workspace.New(bfs)             // any billy.Filesystem
//
// Unwrap returns the underlying billy.Filesystem for code that needs it
// directly.
//
// # Charsets
//
// Charsets are explicit per-path metadata. A path with no explicit charset
// inherits from the nearest ancestor that has one, optionally bounded by a
// scope container; with no explicit charset anywhere, the workspace default
// applies (empty means the platform default, i.e. UTF-8 passthrough).
// Readers decode from the resolved charset to UTF-8 and writers encode from
// UTF-8 to it, via golang.org/x/text.
//
// # Errors
//
// Failures surface as *fs.PathError with the operation, the path, and the
// underlying cause preserved, so callers handle workspace failures the same
// way as any filesystem failure.
package workspace
