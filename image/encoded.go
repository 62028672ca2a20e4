package image

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync/atomic"

	"github.com/gogpu/fresco/imageformat"
	"github.com/spf13/afero"
)

// Encoded image errors.
var (
	// ErrConsumed is returned when a single-use reader source is opened twice.
	ErrConsumed = errors.New("image: encoded stream already consumed")
)

// UnknownSize is reported by EncodedImage.Size when the length is not known.
const UnknownSize = -1

// EncodedImage is a source of encoded image bytes together with the format,
// once determined.
type EncodedImage struct {
	open   func() (io.ReadCloser, error)
	size   int
	format imageformat.ImageFormat
	source string
}

// NewEncodedImage returns an EncodedImage over data. It can be opened any
// number of times.
func NewEncodedImage(data []byte) *EncodedImage {
	return &EncodedImage{
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
		size:   len(data),
		format: imageformat.Unknown,
		source: "memory",
	}
}

// NewEncodedImageFromReader returns an EncodedImage reading from r. It can be
// opened only once; r is closed by the returned ReadCloser if it implements
// io.Closer. Pass UnknownSize when the length is not known.
func NewEncodedImageFromReader(r io.Reader, size int) *EncodedImage {
	var opened atomic.Bool
	return &EncodedImage{
		open: func() (io.ReadCloser, error) {
			if !opened.CompareAndSwap(false, true) {
				return nil, ErrConsumed
			}
			if rc, ok := r.(io.ReadCloser); ok {
				return rc, nil
			}
			return io.NopCloser(r), nil
		},
		size:   size,
		format: imageformat.Unknown,
		source: "stream",
	}
}

// NewEncodedImageFromFile returns an EncodedImage reading the file at path on
// fs. The file is opened lazily on every Open call.
func NewEncodedImageFromFile(fs afero.Fs, path string) (*EncodedImage, error) {
	path = filepath.Clean(path)
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("image: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("image: %s is a directory", path)
	}
	return &EncodedImage{
		open: func() (io.ReadCloser, error) {
			f, err := fs.Open(path)
			if err != nil {
				return nil, fmt.Errorf("image: open %s: %w", path, err)
			}
			return f, nil
		},
		size:   int(info.Size()),
		format: imageformat.Unknown,
		source: path,
	}, nil
}

// Open returns a reader over the encoded bytes. The caller must close it.
func (e *EncodedImage) Open() (io.ReadCloser, error) {
	return e.open()
}

// Size returns the encoded length in bytes, or UnknownSize.
func (e *EncodedImage) Size() int {
	return e.size
}

// Format returns the format set by SetFormat, or imageformat.Unknown.
func (e *EncodedImage) Format() imageformat.ImageFormat {
	return e.format
}

// SetFormat records the detected format.
func (e *EncodedImage) SetFormat(f imageformat.ImageFormat) {
	e.format = f
}

// Source describes where the bytes come from: a file path, "memory" or
// "stream". It is meant for logs.
func (e *EncodedImage) Source() string {
	return e.source
}

// WithReader returns a single-use EncodedImage reading from r that keeps
// e's size, format and source. Used to continue a stream whose header has
// already been peeked.
func (e *EncodedImage) WithReader(r io.Reader) *EncodedImage {
	next := NewEncodedImageFromReader(r, e.size)
	next.format = e.format
	next.source = e.source
	return next
}
