package imageformat

import (
	"bytes"
	"errors"
	"fmt"
)

// FormatChecker recognizes a format from the first HeaderSize bytes of
// encoded data.
//
// DetermineFormat receives at most HeaderSize bytes, possibly fewer when the
// data is shorter. It returns (Unknown, false) when the header does not match.
// Implementations must be pure: no side effects, no panics, safe for
// concurrent use.
type FormatChecker interface {
	HeaderSize() int
	DetermineFormat(header []byte) (ImageFormat, bool)
}

// ErrNonASCII is returned by ASCIIBytes for strings with non-ASCII runes.
var ErrNonASCII = errors.New("imageformat: non-ASCII character in pattern")

// ASCIIBytes returns the bytes of an ASCII string.
func ASCIIBytes(s string) ([]byte, error) {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrNonASCII, s, i)
		}
		b[i] = s[i]
	}
	return b, nil
}

// MustASCIIBytes is like ASCIIBytes but panics on non-ASCII input.
// It simplifies initialization of header patterns from string literals.
func MustASCIIBytes(s string) []byte {
	b, err := ASCIIBytes(s)
	if err != nil {
		panic(err)
	}
	return b
}

// StartsWithPattern reports whether b begins with pattern.
func StartsWithPattern(b, pattern []byte) bool {
	return HasPatternAt(b, pattern, 0)
}

// HasPatternAt reports whether pattern occurs in b at offset.
func HasPatternAt(b, pattern []byte, offset int) bool {
	if offset < 0 || offset+len(pattern) > len(b) {
		return false
	}
	return bytes.Equal(b[offset:offset+len(pattern)], pattern)
}

// IndexOfPattern returns the offset of the first occurrence of pattern in b,
// or -1.
func IndexOfPattern(b, pattern []byte) int {
	return bytes.Index(b, pattern)
}
