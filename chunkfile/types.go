package chunkfile

import (
	"io"
)

// ChunkWriter defines the interface for writing a sequence of numbered chunk files.
// Data written goes to the current chunk; Next closes the current chunk and starts
// the following one. Implementations handle the underlying storage (disk or memory).
type ChunkWriter interface {
	// Close flushes and closes the current chunk, if any.
	// Chunks already written are left in place.
	io.Closer

	// Write appends data to the current chunk.
	// Writing before the first call to Next is an error.
	Write(p []byte) (int, error)

	// Next finalizes the current chunk, if any, and starts the next one.
	// Returns the name of the new chunk.
	Next() (string, error)

	// Size returns the number of chunks started so far.
	Size() int

	// Names returns the names of all chunks started so far, in order.
	Names() []string
}
