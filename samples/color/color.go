// Package color is a sample image format plugin. It decodes "color images",
// text documents of the form
//
//	<color>#FF5722</color>
//
// into a CloseableColorImage holding one opaque ARGB value, and renders them
// as a solid drawable.ColorDrawable. It shows the three pieces a format
// plugin provides: a format checker, a decoder and a drawable factory.
package color

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/fresco"
	"github.com/gogpu/fresco/decoder"
	"github.com/gogpu/fresco/drawable"
	fimage "github.com/gogpu/fresco/image"
	"github.com/gogpu/fresco/imageformat"
)

// Tag is the header every color image starts with.
const Tag = "<color>"

// Format is the image format of color images.
var Format = imageformat.New("IMAGE_FORMAT_COLOR", "color")

var header = imageformat.MustASCIIBytes(Tag)

// FormatChecker recognizes data starting with Tag.
type FormatChecker struct{}

var _ imageformat.FormatChecker = FormatChecker{}

// NewFormatChecker returns a checker for Format.
func NewFormatChecker() FormatChecker {
	return FormatChecker{}
}

// HeaderSize returns the length of Tag.
func (FormatChecker) HeaderSize() int {
	return len(header)
}

// DetermineFormat returns Format when h starts with Tag.
func (c FormatChecker) DetermineFormat(h []byte) (imageformat.ImageFormat, bool) {
	if len(h) < c.HeaderSize() {
		return imageformat.Unknown, false
	}
	if imageformat.StartsWithPattern(h, header) {
		return Format, true
	}
	return imageformat.Unknown, false
}

// CloseableColorImage holds a single ARGB color.
//
// It is not synchronized; Close must not race with readers.
type CloseableColorImage struct {
	color  uint32
	closed bool
}

var _ fimage.CloseableImage = (*CloseableColorImage)(nil)

// NewCloseableColorImage returns an open image for the ARGB color argb.
func NewCloseableColorImage(argb uint32) *CloseableColorImage {
	return &CloseableColorImage{color: argb}
}

// Color returns the ARGB color.
func (i *CloseableColorImage) Color() uint32 { return i.color }

// Close marks the image closed. It may be called any number of times.
func (i *CloseableColorImage) Close() error {
	i.closed = true
	return nil
}

func (i *CloseableColorImage) IsClosed() bool                  { return i.closed }
func (i *CloseableColorImage) SizeInBytes() int                { return 0 }
func (i *CloseableColorImage) Width() int                      { return 0 }
func (i *CloseableColorImage) Height() int                     { return 0 }
func (i *CloseableColorImage) QualityInfo() fimage.QualityInfo { return fimage.FullQuality }
func (i *CloseableColorImage) Extras() map[string]any          { return map[string]any{} }
func (i *CloseableColorImage) SetExtra(string, any)            {}
func (i *CloseableColorImage) IsStateful() bool                { return false }

// Decoder decodes color images.
type Decoder struct{}

var _ decoder.ImageDecoder = Decoder{}

// NewDecoder returns a decoder for Format.
func NewDecoder() Decoder {
	return Decoder{}
}

// Decode reads the whole stream as text. It must start with Tag followed by
// '#'; the hexadecimal digits up to the next '<' (or the end of the data)
// are the RGB value. The alpha channel is always forced to opaque. length,
// quality and opts are ignored.
//
// Errors wrap decoder.ErrFormatMismatch when the text does not start with
// the tag, decoder.ErrMalformed when the digits are not hexadecimal, and are
// a *decoder.ReadError when the stream cannot be read.
func (Decoder) Decode(ctx context.Context, encoded *fimage.EncodedImage, _ int, _ fimage.QualityInfo, _ decoder.Options) (fimage.CloseableImage, error) {
	data, err := decoder.ReadAll(ctx, encoded)
	if err != nil {
		fresco.Logger().Debug("color: read encoded image", "source", encoded.Source(), "err", err)
		return nil, err
	}

	text := string(data)
	prefix := Tag + "#"
	if !strings.HasPrefix(text, prefix) {
		return nil, fmt.Errorf("color: %w: missing %q prefix", decoder.ErrFormatMismatch, prefix)
	}

	digits := text[len(prefix):]
	if end := strings.IndexByte(digits, '<'); end >= 0 {
		digits = digits[:end]
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color: parse %q: %w: %w", digits, decoder.ErrMalformed, err)
	}
	return NewCloseableColorImage(drawable.SetAlphaComponent(uint32(v), 0xFF)), nil
}

// DrawableFactory renders CloseableColorImages as drawable.ColorDrawables.
type DrawableFactory struct{}

var _ drawable.Factory = DrawableFactory{}

// NewDrawableFactory returns a factory for CloseableColorImages.
func NewDrawableFactory() DrawableFactory {
	return DrawableFactory{}
}

// SupportsImageType reports whether img is a *CloseableColorImage.
func (DrawableFactory) SupportsImageType(img fimage.CloseableImage) bool {
	_, ok := img.(*CloseableColorImage)
	return ok
}

// CreateDrawable panics if img is not a *CloseableColorImage.
func (DrawableFactory) CreateDrawable(img fimage.CloseableImage) drawable.Drawable {
	return drawable.NewColorDrawable(img.(*CloseableColorImage).Color())
}

// Plugin returns the capability set for Format.
func Plugin() fresco.Plugin {
	return fresco.Plugin{
		Format:  Format,
		Checker: NewFormatChecker(),
		Decoder: NewDecoder(),
		Factory: NewDrawableFactory(),
	}
}

// Register adds the color format to r.
func Register(r *fresco.Registry) error {
	return r.Register(Plugin())
}
