package linesplit

import (
	"context"
	"errors"
	"os"
)

// writeChunks is the writer stage. It takes lines off the queue in order and
// writes them to the sink, starting a new chunk whenever the next line would
// push the current one over the budget. A line that fills a chunk exactly stays
// in it; only exceeding the budget rolls over.
//
// The sink is closed on return, also on error, so the lines already written
// are flushed to disk and stay valid.
func (s *Splitter) writeChunks(ctx context.Context) (err error) {
	budget := int64(s.config.ChunkBytes)
	var progress int64
	var current string

	defer func() {
		if cerr := s.sink.Close(); cerr != nil && err == nil {
			err = sinkError(cerr, "close", current)
		}
		s.stats.Files = s.sink.Names()
	}()

	for {
		var it item
		var ok bool
		select {
		case it, ok = <-s.lines:
		case <-ctx.Done():
			return ctx.Err()
		}
		if !ok {
			if ctx.Err() != nil {
				// the reader gave up because of the same deadline
				return ctx.Err()
			}
			return &StreamDisconnectedError{Lines: s.stats.Lines}
		}

		switch {
		case it.kind == itemFailure:
			return it.err
		case it.kind == itemEnd, it.line.IsEnd():
			return nil
		}

		line := it.line
		size := int64(line.Size)
		if size > budget {
			return &ChunkTooLargeError{
				Path:   s.name,
				Line:   s.stats.Lines + 1,
				Size:   line.Size,
				Budget: s.config.ChunkBytes,
			}
		}

		progress += size
		if s.sink.Size() == 0 || progress > budget {
			current, err = s.sink.Next()
			if err != nil {
				return sinkError(err, "create", "")
			}
			progress = size
		}

		if _, err = s.sink.Write(line.Content); err != nil {
			return sinkError(err, "write", current)
		}
		s.stats.Lines++
		s.stats.Bytes += size
	}
}

// sinkError converts a sink failure to a *SinkIOError, keeping the operation
// and path reported by the os package when there is one
func sinkError(err error, op, path string) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return NewSinkError(pe.Err, pe.Op, pe.Path)
	}
	return NewSinkError(err, op, path)
}
