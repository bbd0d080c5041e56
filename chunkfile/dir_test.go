package chunkfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != wd {
		t.Errorf("ResolveDir(\"\") = %q, expected %q", got, wd)
	}

	got, err = ResolveDir("out/./sub/")
	if err != nil {
		t.Fatal(err)
	}
	if expected := filepath.Join("out", "sub"); got != expected {
		t.Errorf("ResolveDir returned %q, expected %q", got, expected)
	}
}

func TestIsDirectoryUsable(t *testing.T) {
	testDir := t.TempDir()
	if !IsDirectoryUsable(testDir) {
		t.Error("Expected existing directory to be usable")
	}

	if !IsDirectoryUsable(filepath.Join(testDir, "does", "not", "exist")) {
		t.Error("Expected non-existent directory below a directory to be usable")
	}

	file := filepath.Join(testDir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if IsDirectoryUsable(file) {
		t.Error("Expected file to be unusable as a directory")
	}
	if IsDirectoryUsable(filepath.Join(file, "sub", "dir")) {
		t.Error("Expected path below a file to be unusable")
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"data.txt":                 "data.txt",
		"/var/log/syslog":          "syslog",
		"relative/path/a.csv":      "a.csv",
		"trailing/slash/":          "slash",
		".":                        "",
		"..":                       "",
		string(filepath.Separator): "",
	}
	for in, expected := range tests {
		if got := BaseName(in); got != expected {
			t.Errorf("BaseName(%q) = %q, expected %q", in, got, expected)
		}
	}
}
