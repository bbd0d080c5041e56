// Package linesplit splits a line delimited file into numbered files of at most
// a given number of bytes, without ever breaking a line across two files.
//
// Splitting is a two stage pipeline: a reader goroutine decodes the source into
// lines and hands them, in order, over a bounded channel to a writer running on
// the caller's goroutine. The channel provides backpressure, so memory use does
// not depend on the size of the source.
package linesplit

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/lanrat/linesplit/chunkfile"

	"golang.org/x/sync/errgroup"
)

// ErrAlreadySplit is returned when Split is called a second time on the same Splitter
var ErrAlreadySplit = errors.New("linesplit: Split already called")

// Splitter splits a single source into chunks
type Splitter struct {
	config  Config
	name    string // source path, for errors
	source  io.Reader
	closer  io.Closer // set when the Splitter opened the source itself
	sink    chunkfile.ChunkWriter
	lines   chan item
	stats   Stats
	started bool
}

// New validates config, opens the source file and returns a Splitter writing
// numbered chunk files into config.OutputDir.
// Every configuration problem is reported here as a *ConfigError, before
// anything is read or written.
func New(config *Config) (*Splitter, error) {
	config = mergeConfig(copyConfig(config))
	if err := config.validate(); err != nil {
		return nil, err
	}

	base := chunkfile.BaseName(config.Source)
	if base == "" {
		return nil, NewConfigError("Source", config.Source, "source must name a file")
	}
	stat, err := os.Stat(config.Source)
	if err != nil {
		return nil, NewConfigError("Source", config.Source, err.Error())
	}
	if !stat.Mode().IsRegular() {
		return nil, NewConfigError("Source", config.Source, "target must be a file")
	}

	dir, err := chunkfile.ResolveDir(config.OutputDir)
	if err != nil {
		return nil, NewConfigError("OutputDir", config.OutputDir, err.Error())
	}
	if !chunkfile.IsDirectoryUsable(dir) {
		return nil, NewConfigError("OutputDir", dir, "not a directory")
	}
	config.OutputDir = dir

	f, err := os.Open(config.Source)
	if err != nil {
		return nil, NewConfigError("Source", config.Source, err.Error())
	}

	sink := chunkfile.New(dir, base, &chunkfile.Options{
		BufferSize: config.WriteBufferSize,
		DirPerm:    config.DirPerm,
		FilePerm:   config.FilePerm,
	})
	s := newSplitter(f, config.Source, sink, config)
	s.closer = f
	return s, nil
}

// NewWithWriter returns a Splitter reading lines from r and writing chunks to w.
// name identifies r in errors. config.Source and config.OutputDir are ignored.
// The caller keeps ownership of r.
func NewWithWriter(r io.Reader, name string, w chunkfile.ChunkWriter, config *Config) (*Splitter, error) {
	config = mergeConfig(copyConfig(config))
	if config.ChunkBytes <= 0 {
		return nil, NewConfigError("ChunkBytes", config.ChunkBytes, "must be a positive number of bytes")
	}
	return newSplitter(r, name, w, config), nil
}

func newSplitter(r io.Reader, name string, w chunkfile.ChunkWriter, config *Config) *Splitter {
	return &Splitter{
		config: *config,
		name:   name,
		source: r,
		sink:   w,
		lines:  make(chan item, config.ChanBuffSize),
	}
}

// Config returns the effective configuration, defaults applied
func (s *Splitter) Config() Config {
	return s.config
}

// Split runs the pipeline to completion and returns what was written.
// The reader runs in its own goroutine, the writer runs on the calling one.
// The first error of either stage is returned; a failure of the reader reaches
// the writer through the queue and is returned as is (*SourceIOError).
//
// Files written before a failure are left on disk. ctx is only watched as an
// overall deadline, there is no other way to stop a split midway.
func (s *Splitter) Split(ctx context.Context) (Stats, error) {
	if s.started {
		return s.stats, ErrAlreadySplit
	}
	s.started = true
	defer s.Close()

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	readGroup, readGroupCtx := errgroup.WithContext(readCtx)
	readGroup.Go(func() error {
		return s.readLines(readGroupCtx)
	})

	err := s.writeChunks(ctx)

	// unblock the reader if the writer stopped early
	cancel()
	readErr := readGroup.Wait()
	if err == nil {
		err = readErr
	}
	return s.stats, err
}

// Close releases the source if the Splitter opened it.
// Split calls it when done.
func (s *Splitter) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Split is a convenience wrapper splitting config.Source with a new Splitter
func Split(ctx context.Context, config *Config) (Stats, error) {
	s, err := New(config)
	if err != nil {
		return Stats{}, err
	}
	return s.Split(ctx)
}
