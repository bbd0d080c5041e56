package linesplit

import (
	"bufio"
	"context"
	"io"
	"os"
)

// readLines is the reader stage. It reads the source one line at a time and
// pushes every line, in order, onto the queue, followed by the end of stream.
// A read error is pushed as a failure instead. The queue is always closed on return.
func (s *Splitter) readLines(ctx context.Context) error {
	defer close(s.lines) // the writer treats a close without end as a disconnect

	if f, ok := s.source.(*os.File); ok {
		_ = adviseSequential(f) // hint only
	}

	r := bufio.NewReaderSize(s.source, s.config.ReadBufferSize)
	var offset int64
	for {
		// ReadBytes returns a new slice every call, so lines never share memory
		b, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			err = NewSourceError(err, s.name, offset)
			s.send(ctx, failureItem(err))
			return err
		}
		if len(b) > 0 {
			if !s.send(ctx, lineItem(newLine(b))) {
				return ctx.Err()
			}
			offset += int64(len(b))
		}
		if err == io.EOF {
			if !s.send(ctx, endItem()) {
				return ctx.Err()
			}
			return nil
		}
	}
}

// send blocks until the writer takes it or ctx is done
func (s *Splitter) send(ctx context.Context, it item) bool {
	select {
	case s.lines <- it:
		return true
	case <-ctx.Done():
		return false
	}
}
