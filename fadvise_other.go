//go:build !linux
// +build !linux

package linesplit

import (
	"os"
)

func adviseSequential(f *os.File) error {
	return os.ErrInvalid
}
