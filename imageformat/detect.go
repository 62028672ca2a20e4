package imageformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Detector determines the format of encoded data using DefaultChecker and
// a list of custom checkers.
//
// The default checker is consulted first, then custom checkers in the order
// they were given. A Detector is immutable and safe for concurrent use.
type Detector struct {
	checkers   []FormatChecker
	headerSize int
}

// NewDetector returns a Detector using DefaultChecker followed by custom.
// Nil checkers are skipped.
func NewDetector(custom ...FormatChecker) *Detector {
	d := &Detector{checkers: []FormatChecker{DefaultChecker{}}}
	for _, c := range custom {
		if c != nil {
			d.checkers = append(d.checkers, c)
		}
	}
	for _, c := range d.checkers {
		d.headerSize = max(d.headerSize, c.HeaderSize())
	}
	return d
}

// HeaderSize returns the number of leading bytes needed to run every checker.
func (d *Detector) HeaderSize() int {
	return d.headerSize
}

// DetectBytes returns the format of data, or Unknown. Only the first
// HeaderSize bytes are inspected; each checker sees at most its own
// HeaderSize bytes.
func (d *Detector) DetectBytes(data []byte) ImageFormat {
	for _, c := range d.checkers {
		header := data
		if n := c.HeaderSize(); len(header) > n {
			header = header[:n]
		}
		if f, ok := c.DetermineFormat(header); ok {
			return f
		}
	}
	return Unknown
}

// Detect determines the format of the data read from r without consuming it:
// the returned reader yields the complete stream, header included, and must
// be used in place of r. A stream shorter than HeaderSize is not an error.
func (d *Detector) Detect(r io.Reader) (ImageFormat, io.Reader, error) {
	br := bufio.NewReaderSize(r, max(d.headerSize, 16))
	header, err := br.Peek(d.headerSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return Unknown, br, fmt.Errorf("imageformat: read header: %w", err)
	}
	return d.DetectBytes(header), br, nil
}
