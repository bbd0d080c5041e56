package chunkfile

import (
	"os"
	"path/filepath"
)

// ResolveDir returns the directory chunks should be written to.
// An empty dir means the current working directory, looked up once here
// so that nothing reads it while splitting.
func ResolveDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Clean(dir), nil
	}
	return os.Getwd()
}

// IsDirectoryUsable checks if a directory exists and is a directory, or can be created.
// It returns true for non-existent directories that could potentially be created.
// Writability is not tested here to avoid creating unnecessary files, it will be
// tested when the first chunk is created.
func IsDirectoryUsable(dir string) bool {
	for {
		stat, err := os.Stat(dir)
		if err == nil {
			return stat.IsDir()
		}
		if !os.IsNotExist(err) {
			return false
		}
		// the closest existing ancestor must be a directory for MkdirAll to succeed
		parent := filepath.Dir(dir)
		if parent == dir {
			return true
		}
		dir = parent
	}
}

// BaseName returns the name chunks of source are derived from, or "" if
// source has no usable file name
func BaseName(source string) string {
	base := filepath.Base(source)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}
