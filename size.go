package linesplit

import (
	"math"
	"strconv"
)

// ByteSize is a number of bytes. Suffixes are resolved by ParseByteSize so
// everything downstream only ever sees raw bytes.
type ByteSize int64

const (
	// Kilobyte is the multiplier for the k suffix
	Kilobyte ByteSize = 1000
	// Megabyte is the multiplier for the m suffix
	Megabyte ByteSize = 1000 * Kilobyte
)

var sizeSuffixes = map[byte]ByteSize{
	'k': Kilobyte,
	'm': Megabyte,
}

// ParseByteSize parses a size made of decimal digits optionally followed by a
// single k (x1000) or m (x1000000) suffix, ex: "512", "2k", "10m".
// Any other input returns a *ConfigError.
func ParseByteSize(s string) (ByteSize, error) {
	if s == "" {
		return 0, NewConfigError("bytes", s, "a size is required")
	}

	digits, mult := s, ByteSize(1)
	if m, ok := sizeSuffixes[s[len(s)-1]]; ok {
		digits, mult = s[:len(s)-1], m
	} else if !isDigits(s) {
		return 0, NewConfigError("bytes", s, "only k or m is a supported size suffix")
	}
	if !isDigits(digits) {
		return 0, NewConfigError("bytes", s, digits+" is not numeric, only k or m is a supported size suffix")
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, NewConfigError("bytes", s, "size out of range")
	}
	if n > math.MaxInt64/int64(mult) {
		return 0, NewConfigError("bytes", s, "size out of range")
	}
	return ByteSize(n) * mult, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
// strconv alone would accept a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the shortest form ParseByteSize accepts for b
func (b ByteSize) String() string {
	switch {
	case b != 0 && b%Megabyte == 0:
		return strconv.FormatInt(int64(b/Megabyte), 10) + "m"
	case b != 0 && b%Kilobyte == 0:
		return strconv.FormatInt(int64(b/Kilobyte), 10) + "k"
	}
	return strconv.FormatInt(int64(b), 10)
}
