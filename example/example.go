package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lanrat/linesplit"
)

var count = int(1e6) // 1M

func main() {
	dir, err := os.MkdirTemp("", "linesplit_example_")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// create a source file with numbered lines of varying length
	source := filepath.Join(dir, "source.txt")
	f, err := os.Create(source)
	if err != nil {
		panic(err)
	}
	w := bufio.NewWriter(f)
	for i := 0; i < count; i++ {
		fmt.Fprintf(w, "%d %x\n", i, i*i)
	}
	if err = w.Flush(); err != nil {
		panic(err)
	}
	if err = f.Close(); err != nil {
		panic(err)
	}

	// split it into files of at most 1MB
	config := linesplit.DefaultConfig()
	config.ChunkBytes = linesplit.Megabyte
	config.Source = source
	config.OutputDir = filepath.Join(dir, "chunks")

	stats, err := linesplit.Split(context.Background(), config)
	if err != nil {
		fmt.Printf("err: %s", err.Error())
		return
	}

	// print the chunks that were written
	for _, name := range stats.Files {
		fmt.Println(name)
	}
	fmt.Printf("%d lines, %d bytes\n", stats.Lines, stats.Bytes)
}
