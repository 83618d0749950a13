package workspace

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// Workspace is a virtual-filesystem view over a billy.Filesystem with
// per-path charset metadata. All methods are safe for concurrent use; the
// underlying filesystem's own concurrency guarantees apply to file data.
type Workspace struct {
	bfs           billy.Filesystem
	caseSensitive bool

	cmu            sync.RWMutex
	charsets       map[string]string
	defaultCharset string
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithCaseSensitivity overrides the detected name-case behavior of the
// backing filesystem.
func WithCaseSensitivity(sensitive bool) Option {
	return func(w *Workspace) {
		w.caseSensitive = sensitive
	}
}

// WithDefaultCharset sets the workspace-wide fallback charset. Empty means
// the platform default (UTF-8 passthrough).
func WithDefaultCharset(charset string) Option {
	return func(w *Workspace) {
		w.defaultCharset = charset
	}
}

// New wraps an existing billy.Filesystem. The workspace is assumed
// case-sensitive unless configured otherwise.
func New(bfs billy.Filesystem, opts ...Option) *Workspace {
	w := &Workspace{
		bfs:           bfs,
		caseSensitive: true,
		charsets:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewMemory returns a workspace over a fresh in-memory filesystem.
func NewMemory(opts ...Option) *Workspace {
	return New(memfs.New(), opts...)
}

// NewLocal returns a workspace over the local filesystem rooted at root.
// Name-case behavior defaults to the host platform's convention (insensitive
// on macOS and Windows) and can be overridden with WithCaseSensitivity.
func NewLocal(root string, opts ...Option) *Workspace {
	defaults := []Option{WithCaseSensitivity(localCaseSensitive())}
	return New(osfs.New(root), append(defaults, opts...)...)
}

func localCaseSensitive() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return false
	default:
		return true
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (w *Workspace) Unwrap() billy.Filesystem {
	return w.bfs
}

// CaseSensitive reports whether the workspace distinguishes names by case.
func (w *Workspace) CaseSensitive() bool {
	return w.caseSensitive
}

// normalize converts paths to cleaned, slash-separated form.
func normalize(name string) string {
	return filepath.ToSlash(path.Clean(filepath.ToSlash(name)))
}

// parent returns the container of a normalized path, and false at the tree
// root.
func parent(name string) (string, bool) {
	p := path.Dir(name)
	if p == name {
		return "", false
	}
	return p, true
}

// pathError translates a failure into *fs.PathError with the cause
// preserved. Failures that already are path errors pass through untouched.
func pathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if stderrors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}
