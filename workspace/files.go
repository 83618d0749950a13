package workspace

import (
	stderrors "errors"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5/util"

	"github.com/ifml-editor-alpha/platformkit/progress"
)

// Exists reports whether a file or folder is present at the path.
func (w *Workspace) Exists(name string) (bool, error) {
	name = normalize(name)
	_, err := w.bfs.Stat(name)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, pathError("stat", name, err)
}

// missingAncestors returns the folders that must be created for the path to
// exist, ordered outermost first. The path itself is included.
func (w *Workspace) missingAncestors(name string) ([]string, error) {
	var missing []string
	for cur := name; ; {
		// The tree root always exists.
		if cur == "." || cur == "/" {
			break
		}
		ok, err := w.Exists(cur)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		missing = append(missing, cur)
		up, hasParent := parent(cur)
		if !hasParent {
			break
		}
		cur = up
	}
	for i, j := 0, len(missing)-1; i < j; i, j = i+1, j-1 {
		missing[i], missing[j] = missing[j], missing[i]
	}
	return missing, nil
}

// CreateFolders creates the folder and any missing ancestors, outermost
// first, reporting one unit of progress per folder created. Creating an
// already existing folder is a no-op.
func (w *Workspace) CreateFolders(name string, m progress.Monitor) error {
	name = normalize(name)
	m = progress.Monitored(m)
	missing, err := w.missingAncestors(name)
	if err != nil {
		return err
	}
	m.Begin("Creating folders", len(missing))
	defer m.Done()
	for _, dir := range missing {
		if err := w.bfs.MkdirAll(dir, 0o755); err != nil {
			return pathError("mkdir", dir, err)
		}
		m.Work(1)
	}
	return nil
}

// CreateOrRefresh ensures the folder exists. An existing folder is left as
// is; a regular file in the way is an error.
func (w *Workspace) CreateOrRefresh(name string) error {
	name = normalize(name)
	info, err := w.bfs.Stat(name)
	if err == nil {
		if !info.IsDir() {
			return pathError("mkdir", name, syscall.ENOTDIR)
		}
		return nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return pathError("stat", name, err)
	}
	return w.CreateFolders(name, nil)
}

// WriteFile creates or replaces the file with the reader's contents, making
// sure the containing folder exists first.
func (w *Workspace) WriteFile(name string, r io.Reader, m progress.Monitor) error {
	name = normalize(name)
	m = progress.Monitored(m)
	m.Begin("Writing "+name, progress.DefaultTotalWork)
	defer m.Done()
	if dir, ok := parent(name); ok {
		if err := w.CreateFolders(dir, progress.Sub(m, progress.DefaultTotalWork/2)); err != nil {
			return err
		}
	}
	f, err := w.bfs.Create(name)
	if err != nil {
		return pathError("create", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return pathError("write", name, err)
	}
	if err := f.Close(); err != nil {
		return pathError("close", name, err)
	}
	return nil
}

// Folders lists the names of the folders directly inside dir, sorted.
func (w *Workspace) Folders(dir string) ([]string, error) {
	dir = normalize(dir)
	entries, err := w.bfs.ReadDir(dir)
	if err != nil {
		return nil, pathError("readdir", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// MemberIgnoringCase looks the name up among dir's members without regard to
// case. An exact-case member wins over a variant; among several variants the
// first in directory order is returned.
func (w *Workspace) MemberIgnoringCase(dir, name string) (string, bool, error) {
	dir = normalize(dir)
	entries, err := w.bfs.ReadDir(dir)
	if err != nil {
		return "", false, pathError("readdir", dir, err)
	}
	variant := ""
	for _, e := range entries {
		if e.Name() == name {
			return name, true, nil
		}
		if variant == "" && strings.EqualFold(e.Name(), name) {
			variant = e.Name()
		}
	}
	if variant != "" {
		return variant, true, nil
	}
	return "", false, nil
}

// FindCaseVariant resolves the path against what actually exists, matching
// each segment case-insensitively. When acceptExact is false a result that
// matches the requested path exactly is rejected, so only a genuinely
// differing case variant is reported. Returns false when no existing
// variant is found.
func (w *Workspace) FindCaseVariant(name string, acceptExact bool) (string, bool, error) {
	name = normalize(name)
	segments := strings.Split(strings.TrimPrefix(name, "/"), "/")
	resolved := "."
	if strings.HasPrefix(name, "/") {
		resolved = "/"
	}
	for _, seg := range segments {
		actual, ok, err := w.MemberIgnoringCase(resolved, seg)
		if err != nil || !ok {
			return "", false, err
		}
		resolved = path.Join(resolved, actual)
	}
	if resolved == name && !acceptExact {
		return "", false, nil
	}
	return resolved, true, nil
}

// ExistingPaths filters the given paths down to those that exist, optionally
// adding every existing ancestor of each, deduplicated and sorted in path
// order.
func (w *Workspace) ExistingPaths(paths []string, includeAncestors bool) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	for _, p := range paths {
		p = normalize(p)
		for p != "." && p != "/" {
			ok, err := w.Exists(p)
			if err != nil {
				return nil, err
			}
			if ok {
				add(p)
			}
			if !includeAncestors {
				break
			}
			up, hasParent := parent(p)
			if !hasParent {
				break
			}
			p = up
		}
	}
	SortPaths(out)
	return out, nil
}

// ComparePaths orders two normalized paths segment by segment, so a folder
// sorts directly before its members.
func ComparePaths(a, b string) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

// SortPaths sorts paths in place into ComparePaths order.
func SortPaths(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return ComparePaths(paths[i], paths[j]) < 0
	})
}

// Clear removes every top-level member of the workspace, reporting one unit
// of progress per member removed.
func (w *Workspace) Clear(m progress.Monitor) error {
	m = progress.Monitored(m)
	entries, err := w.bfs.ReadDir("/")
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return pathError("readdir", "/", err)
	}
	m.Begin("Clearing workspace", len(entries))
	defer m.Done()
	for _, e := range entries {
		name := "/" + e.Name()
		if err := util.RemoveAll(w.bfs, name); err != nil {
			return pathError("remove", name, err)
		}
		m.Work(1)
	}
	return nil
}
