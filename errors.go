package linesplit

import (
	"fmt"
)

// ConfigError represents an error in configuration parameters.
// It is always detected before the pipeline starts.
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

// ChunkTooLargeError is returned when a single line does not fit in the byte budget.
// Lines are never truncated or split, so the run stops at that line.
type ChunkTooLargeError struct {
	// Path is the source file the line came from
	Path string
	// Line is the 1-based line number in the source
	Line int64
	// Size is the byte size of the line, terminator included
	Size int
	// Budget is the configured maximum chunk size in bytes
	Budget ByteSize
}

func (e *ChunkTooLargeError) Error() string {
	return fmt.Sprintf("line %d of %s is %d bytes, exceeds maximum chunk size of %d bytes", e.Line, e.Path, e.Size, e.Budget)
}

// SourceIOError is a failure reading the source file. It is produced by the reader stage
// and handed to the writer through the queue.
type SourceIOError struct {
	Path string
	// Offset is the number of bytes successfully read before the failure
	Offset int64
	Err    error
}

func (e *SourceIOError) Error() string {
	return fmt.Sprintf("read error on %s at byte offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *SourceIOError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a SourceIOError wrapping the underlying I/O error
func NewSourceError(err error, path string, offset int64) error {
	return &SourceIOError{Path: path, Offset: offset, Err: err}
}

// SinkIOError is a failure creating the output directory or opening, writing,
// flushing or closing an output file.
type SinkIOError struct {
	// Op is the operation that failed, ex: "create", "write"
	Op   string
	Path string
	Err  error
}

func (e *SinkIOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk error during %s on %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("disk error during %s: %v", e.Op, e.Err)
}

func (e *SinkIOError) Unwrap() error {
	return e.Err
}

// NewSinkError creates a SinkIOError wrapping the underlying I/O error
func NewSinkError(err error, operation, path string) error {
	return &SinkIOError{Op: operation, Path: path, Err: err}
}

// StreamDisconnectedError means the handoff queue was closed before the reader
// sent either the end of stream or a failure. The reader died without reporting.
type StreamDisconnectedError struct {
	// Lines is the number of lines received before the disconnect
	Lines int64
}

func (e *StreamDisconnectedError) Error() string {
	return fmt.Sprintf("line stream disconnected without end of stream after %d lines", e.Lines)
}
