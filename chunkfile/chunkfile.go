// Package chunkfile writes a sequence of numbered chunk files derived from a source
// file name. Only one chunk is open at a time: moving to the next chunk flushes and
// closes the previous one, which is never reopened.
package chunkfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNoChunk is returned when writing before the first chunk was started
	ErrNoChunk = errors.New("chunkfile: write before first chunk")
	// ErrClosed is returned when using a writer after Close
	ErrClosed = errors.New("chunkfile: writer is closed")
)

// default file IO buffer size for each chunk
const defaultBufferSize = 1 << 16 // 64k

// Options tunes a FileWriter. Zero values use the defaults.
type Options struct {
	BufferSize int
	DirPerm    os.FileMode
	FilePerm   os.FileMode
}

// FileWriter is a ChunkWriter backed by files in a directory.
// The directory, and its parents, are created when the first chunk is started.
type FileWriter struct {
	dir       string
	base      string
	opts      Options
	file      *os.File
	bufWriter *bufio.Writer
	names     []string
	closed    bool
}

// Name returns the file name of chunk n (1-based) for the source base name
func Name(n int, base string) string {
	return fmt.Sprintf("%d_%s", n, base)
}

// New returns a FileWriter writing chunks of base into dir.
// Nothing is touched on disk until the first call to Next.
func New(dir, base string, opts *Options) *FileWriter {
	w := FileWriter{dir: dir, base: base}
	if opts != nil {
		w.opts = *opts
	}
	if w.opts.BufferSize <= 0 {
		w.opts.BufferSize = defaultBufferSize
	}
	if w.opts.DirPerm == 0 {
		w.opts.DirPerm = 0o755
	}
	if w.opts.FilePerm == 0 {
		w.opts.FilePerm = 0o644
	}
	return &w
}

// Size returns the number of chunk files created
func (w *FileWriter) Size() int {
	return len(w.names)
}

// Names returns the paths of the chunk files created so far
func (w *FileWriter) Names() []string {
	return append([]string(nil), w.names...)
}

// Dir returns the output directory
func (w *FileWriter) Dir() string {
	return w.dir
}

func (w *FileWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.bufWriter == nil {
		return 0, ErrNoChunk
	}
	return w.bufWriter.Write(p)
}

// Next flushes and closes the current chunk and creates the next one
func (w *FileWriter) Next() (string, error) {
	if w.closed {
		return "", ErrClosed
	}
	if err := w.finish(); err != nil {
		return "", err
	}
	if len(w.names) == 0 {
		if err := os.MkdirAll(w.dir, w.opts.DirPerm); err != nil {
			return "", err
		}
	}

	name := filepath.Join(w.dir, Name(len(w.names)+1, w.base))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.opts.FilePerm)
	if err != nil {
		return "", err
	}
	w.file = f
	if w.bufWriter == nil {
		w.bufWriter = bufio.NewWriterSize(f, w.opts.BufferSize)
	} else {
		w.bufWriter.Reset(f)
	}
	w.names = append(w.names, name)
	return name, nil
}

// finish flushes and closes the current chunk, if any
func (w *FileWriter) finish() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	err := w.bufWriter.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close flushes and closes the current chunk.
// Calling Close more than once is a no-op.
func (w *FileWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.finish()
	w.bufWriter = nil
	return err
}
