package chunkfile_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lanrat/linesplit/chunkfile"
)

func TestName(t *testing.T) {
	if got := chunkfile.Name(12, "data.csv"); got != "12_data.csv" {
		t.Fatalf("Name returned %q, expected %q", got, "12_data.csv")
	}
}

func TestFileWriterChunks(t *testing.T) {
	iterations := 10
	line := "The quick brown fox jumps over the lazy dog\n"
	dir := filepath.Join(t.TempDir(), "out")

	w := chunkfile.New(dir, "fox.txt", nil)
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("directory created before the first chunk")
	}

	for i := 0; i < iterations; i++ {
		name, err := w.Next()
		if err != nil {
			t.Fatal(err)
		}
		expected := filepath.Join(dir, fmt.Sprintf("%d_fox.txt", i+1))
		if name != expected {
			t.Fatalf("Next returned %q, expected %q", name, expected)
		}
		if s := w.Size(); s != i+1 {
			t.Fatalf("Size returned %d, expected %d", s, i+1)
		}
		if _, err := fmt.Fprintf(w, "%d: %s", i, line); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	names := w.Names()
	if len(names) != iterations {
		t.Fatalf("Names returned %d names, expected %d", len(names), iterations)
	}
	for i := iterations - 1; i >= 0; i-- {
		b, err := os.ReadFile(names[i])
		if err != nil {
			t.Fatal(err)
		}
		expected := fmt.Sprintf("%d: %s", i, line)
		if string(b) != expected {
			t.Fatalf("chunk %d contains %q, expected %q", i, b, expected)
		}
	}
}

func TestFileWriterBuffered(t *testing.T) {
	dir := t.TempDir()
	w := chunkfile.New(dir, "src", &chunkfile.Options{BufferSize: 16, FilePerm: 0o600})
	name, err := w.Next()
	if err != nil {
		t.Fatal(err)
	}
	// larger than the buffer, goes straight through
	big := make([]byte, 100)
	for i := range big {
		big[i] = 'a'
	}
	if _, err := w.Write(big); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("tail")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != 104 {
		t.Errorf("chunk has %d bytes, expected 104", fi.Size())
	}
}

func TestFileWriterErrors(t *testing.T) {
	w := chunkfile.New(t.TempDir(), "src", nil)
	if _, err := w.Write([]byte("x")); !errors.Is(err, chunkfile.ErrNoChunk) {
		t.Errorf("Write before Next returned %v, expected ErrNoChunk", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
	if _, err := w.Next(); !errors.Is(err, chunkfile.ErrClosed) {
		t.Errorf("Next after Close returned %v, expected ErrClosed", err)
	}
	if _, err := w.Write([]byte("x")); !errors.Is(err, chunkfile.ErrClosed) {
		t.Errorf("Write after Close returned %v, expected ErrClosed", err)
	}
	if w.Size() != 0 {
		t.Errorf("Size returned %d, expected 0", w.Size())
	}
}

func TestFileWriterDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w := chunkfile.New(filepath.Join(file, "out"), "src", nil)
	_, err := w.Next()
	var pe *os.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a PathError, got: %T %v", err, err)
	}
	if w.Size() != 0 {
		t.Errorf("Size returned %d after a failed Next", w.Size())
	}
}

func TestFileWriterTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "1_src")
	if err := os.WriteFile(old, []byte("stale content from an earlier run\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := chunkfile.New(dir, "src", nil)
	if _, err := w.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("new\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(old)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "new\n" {
		t.Errorf("chunk contains %q, expected %q", b, "new\n")
	}
}

func TestMock(t *testing.T) {
	var w chunkfile.ChunkWriter = chunkfile.Mock("src")
	if _, err := w.Write([]byte("x")); !errors.Is(err, chunkfile.ErrNoChunk) {
		t.Errorf("Write before Next returned %v, expected ErrNoChunk", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := w.Next(); err != nil {
			t.Fatal(err)
		}
		if _, err := fmt.Fprintf(w, "chunk %d\n", i); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	mock := w.(*chunkfile.MockWriter)
	for i := 0; i < 3; i++ {
		if got, expected := string(mock.Bytes(i)), fmt.Sprintf("chunk %d\n", i); got != expected {
			t.Errorf("chunk %d contains %q, expected %q", i, got, expected)
		}
	}
	if names := mock.Names(); len(names) != 3 || names[2] != "3_src" {
		t.Errorf("unexpected names %v", names)
	}
	if _, err := w.Next(); !errors.Is(err, chunkfile.ErrClosed) {
		t.Errorf("Next after Close returned %v, expected ErrClosed", err)
	}
}
