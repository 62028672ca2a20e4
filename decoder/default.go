package decoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	fimage "github.com/gogpu/fresco/image"
	"github.com/gogpu/fresco/imageformat"
	"github.com/gogpu/fresco/internal/logging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type decodeFunc func(io.Reader) (image.Image, error)

// builtin maps every default format with a Go decoder to it. GIF decodes the
// first frame only; animated WebP, ICO and HEIF have no decoder.
var builtin = map[imageformat.ImageFormat]decodeFunc{
	imageformat.JPEG:                  jpeg.Decode,
	imageformat.PNG:                   png.Decode,
	imageformat.GIF:                   gif.Decode,
	imageformat.BMP:                   bmp.Decode,
	imageformat.TIFF:                  tiff.Decode,
	imageformat.WebPSimple:            webp.Decode,
	imageformat.WebPLossless:          webp.Decode,
	imageformat.WebPExtended:          webp.Decode,
	imageformat.WebPExtendedWithAlpha: webp.Decode,
}

// Default decodes the default formats into *image.CloseableStaticBitmap.
type Default struct {
	detector *imageformat.Detector
}

var _ ImageDecoder = (*Default)(nil)

// NewDefault returns a decoder for the formats listed by Formats.
func NewDefault() *Default {
	return &Default{detector: imageformat.NewDetector()}
}

// Formats returns the formats Default can decode, in imageformat.Defaults order.
func (d *Default) Formats() []imageformat.ImageFormat {
	var out []imageformat.ImageFormat
	for _, f := range imageformat.Defaults() {
		if _, ok := builtin[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Supports reports whether f can be decoded.
func (d *Default) Supports(f imageformat.ImageFormat) bool {
	_, ok := builtin[f]
	return ok
}

// Decode reads the encoded stream and decodes it according to its format.
// When the format is not set on encoded it is detected from the data. When
// length is positive and shorter than the data, only the first length bytes
// are decoded. Animated GIFs are read completely unless opts.ForceStaticImage
// is set; the first frame is returned and the frame count is recorded in the
// "frame_count" extra.
func (d *Default) Decode(ctx context.Context, encoded *fimage.EncodedImage, length int, quality fimage.QualityInfo, opts Options) (fimage.CloseableImage, error) {
	data, err := ReadAll(ctx, encoded)
	if err != nil {
		logging.Logger().Debug("decoder: read failed", "source", encoded.Source(), "err", err)
		return nil, err
	}
	if length > 0 && length < len(data) {
		data = data[:length]
	}

	format := encoded.Format()
	if format.IsUnknown() {
		format = d.detector.DetectBytes(data)
	}
	decode, ok := builtin[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	var frames int
	if format == imageformat.GIF && !opts.ForceStaticImage {
		decode = func(r io.Reader) (image.Image, error) {
			g, err := gif.DecodeAll(r)
			if err != nil {
				return nil, err
			}
			if len(g.Image) == 0 {
				return nil, errors.New("gif: no frames")
			}
			frames = len(g.Image)
			return g.Image[0], nil
		}
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("decoder: decode %s: %w: %w", format, ErrMalformed, err)
		logging.Logger().Debug("decoder: decode failed", "source", encoded.Source(), "format", format, "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bitmap := fimage.NewCloseableStaticBitmap(Downscale(img, opts), quality)
	bitmap.SetExtras(map[string]any{
		"format":          format.Name(),
		"original_width":  img.Bounds().Dx(),
		"original_height": img.Bounds().Dy(),
	})
	if frames > 0 {
		bitmap.SetExtra("frame_count", frames)
	}
	return bitmap, nil
}
