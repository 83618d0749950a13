package workspace

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// SetCharset records an explicit charset for a path. Descendants without an
// explicit charset of their own inherit it. An empty charset removes the
// entry.
func (w *Workspace) SetCharset(name, charset string) {
	name = normalize(name)
	w.cmu.Lock()
	defer w.cmu.Unlock()
	if charset == "" {
		delete(w.charsets, name)
		return
	}
	w.charsets[name] = charset
}

// Charset returns the charset set explicitly on the path itself, without
// inheritance.
func (w *Workspace) Charset(name string) string {
	w.cmu.RLock()
	defer w.cmu.RUnlock()
	return w.charsets[normalize(name)]
}

// DefaultCharset resolves the effective charset of a path: the path's
// explicit charset, or the nearest ancestor's, walking no further up than
// scope when scope is non-empty. With no explicit charset in reach it
// returns the workspace default (empty = platform default).
func (w *Workspace) DefaultCharset(name, scope string) string {
	cur := normalize(name)
	if scope != "" {
		scope = normalize(scope)
	}
	w.cmu.RLock()
	defer w.cmu.RUnlock()
	for {
		if cs, ok := w.charsets[cur]; ok {
			return cs
		}
		if scope != "" && cur == scope {
			break
		}
		up, ok := parent(cur)
		if !ok {
			break
		}
		cur = up
	}
	return w.defaultCharset
}

// lookupEncoding resolves a charset name through the HTML/IANA index.
func lookupEncoding(charset string) (encoding.Encoding, error) {
	return htmlindex.Get(charset)
}

type decodedReader struct {
	io.Reader
	closer io.Closer
}

func (r decodedReader) Close() error {
	return r.closer.Close()
}

// Reader opens the file for reading, decoding its contents from the path's
// resolved charset to UTF-8.
func (w *Workspace) Reader(name string) (io.ReadCloser, error) {
	return w.ReaderCharset(name, "")
}

// ReaderCharset opens the file for reading, decoding from the given charset;
// an empty charset resolves through DefaultCharset, and no resolution at all
// yields the raw bytes.
func (w *Workspace) ReaderCharset(name, charset string) (io.ReadCloser, error) {
	name = normalize(name)
	if charset == "" {
		charset = w.DefaultCharset(name, "")
	}
	f, err := w.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	if charset == "" {
		return f, nil
	}
	enc, err := lookupEncoding(charset)
	if err != nil {
		_ = f.Close()
		return nil, pathError("open", name, err)
	}
	return decodedReader{Reader: transform.NewReader(f, enc.NewDecoder()), closer: f}, nil
}

// fileWriter buffers everything written to it and commits the full contents
// to the workspace file on Close, creating or replacing the file. Nothing
// reaches the backing filesystem before Close.
type fileWriter struct {
	ws     *Workspace
	name   string
	buf    bytes.Buffer
	dst    io.WriteCloser
	closed bool
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func (fw *fileWriter) Write(p []byte) (int, error) {
	if fw.closed {
		return 0, pathError("write", fw.name, io.ErrClosedPipe)
	}
	return fw.dst.Write(p)
}

func (fw *fileWriter) Close() error {
	if fw.closed {
		return nil
	}
	fw.closed = true
	if err := fw.dst.Close(); err != nil {
		return pathError("write", fw.name, err)
	}
	f, err := fw.ws.bfs.Create(fw.name)
	if err != nil {
		return pathError("create", fw.name, err)
	}
	if _, err := f.Write(fw.buf.Bytes()); err != nil {
		_ = f.Close()
		return pathError("write", fw.name, err)
	}
	if err := f.Close(); err != nil {
		return pathError("close", fw.name, err)
	}
	return nil
}

// Writer opens a buffered writer for the file, encoding UTF-8 input into the
// path's resolved charset. The file is created or replaced with the buffered
// contents when the writer is closed; before that the file is untouched.
func (w *Workspace) Writer(name string) (io.WriteCloser, error) {
	return w.WriterCharset(name, "")
}

// WriterCharset opens a buffered writer encoding into the given charset; an
// empty charset resolves through DefaultCharset, and no resolution at all
// writes the raw bytes.
func (w *Workspace) WriterCharset(name, charset string) (io.WriteCloser, error) {
	name = normalize(name)
	if charset == "" {
		charset = w.DefaultCharset(name, "")
	}
	fw := &fileWriter{ws: w, name: name}
	if charset == "" {
		fw.dst = nopWriteCloser{&fw.buf}
		return fw, nil
	}
	enc, err := lookupEncoding(charset)
	if err != nil {
		return nil, pathError("create", name, err)
	}
	fw.dst = transform.NewWriter(&fw.buf, enc.NewEncoder())
	return fw, nil
}
