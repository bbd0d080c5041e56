package linesplit

// Line is one line of the source file as it travels from the reader to the writer.
// Content holds the exact bytes read, including the trailing newline when the
// source has one. Size is len(Content); a Size of zero marks the end of the stream
// and every real line has a Size of at least one.
type Line struct {
	Content []byte
	Size    int
}

// newLine wraps b, which must not be reused by the caller afterwards
func newLine(b []byte) Line {
	return Line{Content: b, Size: len(b)}
}

// IsEnd reports whether l is the end of stream sentinel
func (l Line) IsEnd() bool {
	return l.Size == 0
}

// itemKind tags the values sent on the handoff queue
type itemKind int

const (
	itemLine itemKind = iota
	itemEnd
	itemFailure
)

// item is what travels on the handoff queue: either a line, the end of the
// stream, or the error that stopped the reader
type item struct {
	kind itemKind
	line Line
	err  error
}

func lineItem(l Line) item {
	return item{kind: itemLine, line: l}
}

func endItem() item {
	return item{kind: itemEnd}
}

func failureItem(err error) item {
	return item{kind: itemFailure, err: err}
}

// Stats describes the output of a finished, or failed, run
type Stats struct {
	// Files lists the output files in creation order
	Files []string
	// Lines is the number of lines written
	Lines int64
	// Bytes is the number of bytes written
	Bytes int64
}
