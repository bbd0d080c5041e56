package chunkfile

import (
	"bytes"
)

// MockWriter provides an in-memory implementation of the ChunkWriter interface.
// It keeps every chunk in a bytes.Buffer instead of writing files.
// This is useful for testing and benchmarking without filesystem I/O overhead.
type MockWriter struct {
	base   string
	chunks []*bytes.Buffer
	names  []string
	closed bool
}

// Mock creates a new in-memory ChunkWriter naming its chunks after base
func Mock(base string) *MockWriter {
	return &MockWriter{base: base}
}

// Size returns the number of chunks started
func (w *MockWriter) Size() int {
	return len(w.chunks)
}

// Names returns the chunk names, without any directory
func (w *MockWriter) Names() []string {
	return append([]string(nil), w.names...)
}

// Bytes returns the content of chunk i (0-based)
func (w *MockWriter) Bytes(i int) []byte {
	if i < 0 || i >= len(w.chunks) {
		panic("chunkfile: chunk request out of range")
	}
	return w.chunks[i].Bytes()
}

// Write appends data to the current chunk in memory
func (w *MockWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if len(w.chunks) == 0 {
		return 0, ErrNoChunk
	}
	return w.chunks[len(w.chunks)-1].Write(p)
}

// Next starts a new chunk
func (w *MockWriter) Next() (string, error) {
	if w.closed {
		return "", ErrClosed
	}
	name := Name(len(w.chunks)+1, w.base)
	w.chunks = append(w.chunks, new(bytes.Buffer))
	w.names = append(w.names, name)
	return name, nil
}

// Close stops accepting writes, the chunks stay readable
func (w *MockWriter) Close() error {
	w.closed = true
	return nil
}
