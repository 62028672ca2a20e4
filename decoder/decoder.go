// Package decoder turns encoded images into closeable in-memory images.
//
// Decoders report why no image was produced instead of returning nothing:
// ErrFormatMismatch, ErrMalformed, a *ReadError wrapping the I/O cause, or
// ErrUnsupportedFormat. Classify maps any of them to an Outcome.
package decoder

import (
	"context"
	"io"

	fimage "github.com/gogpu/fresco/image"
)

// ImageDecoder decodes an encoded image.
//
// length is the number of encoded bytes available, or image.UnknownSize;
// decoders that need the whole stream may ignore it. Implementations must be
// safe for concurrent use.
type ImageDecoder interface {
	Decode(ctx context.Context, encoded *fimage.EncodedImage, length int, quality fimage.QualityInfo, opts Options) (fimage.CloseableImage, error)
}

// Func adapts an ordinary function to the ImageDecoder interface.
type Func func(ctx context.Context, encoded *fimage.EncodedImage, length int, quality fimage.QualityInfo, opts Options) (fimage.CloseableImage, error)

// Decode calls f.
func (f Func) Decode(ctx context.Context, encoded *fimage.EncodedImage, length int, quality fimage.QualityInfo, opts Options) (fimage.CloseableImage, error) {
	return f(ctx, encoded, length, quality, opts)
}

// ReadAll drains the encoded stream. Open and read failures are returned as
// *ReadError; a canceled ctx is returned as is.
func ReadAll(ctx context.Context, encoded *fimage.EncodedImage) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := encoded.Open()
	if err != nil {
		return nil, &ReadError{Source: encoded.Source(), Err: err}
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ReadError{Source: encoded.Source(), Err: err}
	}
	return data, nil
}
