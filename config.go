package linesplit

import (
	"os"
)

// Config holds configuration settings for a split run
type Config struct {
	ChunkBytes      ByteSize    // maximum size in bytes of each output file
	Source          string      // path of the file to split
	OutputDir       string      // directory for the output files, empty for the working directory
	ChanBuffSize    int         // buffer size of the queue between the reader and the writer
	ReadBufferSize  int         // file IO buffer size for the source
	WriteBufferSize int         // file IO buffer size for each output file
	DirPerm         os.FileMode // permissions for created directories
	FilePerm        os.FileMode // permissions for created output files
}

// DefaultConfig returns the default configuration options used if none provided.
// ChunkBytes and Source have no defaults.
func DefaultConfig() *Config {
	return &Config{
		ChanBuffSize:    1024,
		ReadBufferSize:  1 << 16, // 64k
		WriteBufferSize: 1 << 16, // 64k
		DirPerm:         0o755,
		FilePerm:        0o644,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.ChanBuffSize < 0 {
		c.ChanBuffSize = d.ChanBuffSize
	}
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize <= 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.DirPerm == 0 {
		c.DirPerm = d.DirPerm
	}
	if c.FilePerm == 0 {
		c.FilePerm = d.FilePerm
	}
	// OutputDir is resolved by New, it depends on the working directory
	return c
}

// validate checks the fields that have no usable default
func (c *Config) validate() error {
	if c.ChunkBytes <= 0 {
		return NewConfigError("ChunkBytes", c.ChunkBytes, "must be a positive number of bytes")
	}
	if c.Source == "" {
		return NewConfigError("Source", c.Source, "a source file is required")
	}
	return nil
}

// copyConfig keeps mergeConfig from changing the caller's Config
func copyConfig(c *Config) *Config {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
