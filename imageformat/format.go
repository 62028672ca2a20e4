// Package imageformat identifies encoded image formats from their leading bytes.
//
// An ImageFormat is a comparable value object and can be used as a map key.
// A FormatChecker inspects a fixed-size header and reports the format it
// recognizes; a Detector combines the built-in DefaultChecker with any number
// of custom checkers.
package imageformat

// ImageFormat identifies an encoded image format by name and file extension.
// The zero value is not a valid format; use Unknown for "no format".
type ImageFormat struct {
	name          string
	fileExtension string
}

// New returns the format with the given name and file extension
// (without the leading dot).
func New(name, fileExtension string) ImageFormat {
	return ImageFormat{name: name, fileExtension: fileExtension}
}

// Name returns the format name, e.g. "PNG".
func (f ImageFormat) Name() string {
	return f.name
}

// FileExtension returns the usual file extension without the leading dot.
func (f ImageFormat) FileExtension() string {
	return f.fileExtension
}

// String returns the format name.
func (f ImageFormat) String() string {
	return f.name
}

// IsUnknown reports whether f is Unknown or the zero value.
func (f ImageFormat) IsUnknown() bool {
	return f == Unknown || f == ImageFormat{}
}

// Unknown is reported when no checker recognizes the data.
var Unknown = New("UNKNOWN", "")

// Formats recognized by DefaultChecker.
var (
	JPEG                  = New("JPEG", "jpeg")
	PNG                   = New("PNG", "png")
	GIF                   = New("GIF", "gif")
	BMP                   = New("BMP", "bmp")
	ICO                   = New("ICO", "ico")
	WebPSimple            = New("WEBP_SIMPLE", "webp")
	WebPLossless          = New("WEBP_LOSSLESS", "webp")
	WebPExtended          = New("WEBP_EXTENDED", "webp")
	WebPExtendedWithAlpha = New("WEBP_EXTENDED_WITH_ALPHA", "webp")
	WebPAnimated          = New("WEBP_ANIMATED", "webp")
	HEIF                  = New("HEIF", "heif")
	TIFF                  = New("TIFF", "tiff")
)

// Defaults returns every format DefaultChecker can report.
func Defaults() []ImageFormat {
	return []ImageFormat{
		JPEG, PNG, GIF, BMP, ICO,
		WebPSimple, WebPLossless, WebPExtended, WebPExtendedWithAlpha, WebPAnimated,
		HEIF, TIFF,
	}
}

// IsDefault reports whether f is one of the formats returned by Defaults.
func IsDefault(f ImageFormat) bool {
	for _, d := range Defaults() {
		if d == f {
			return true
		}
	}
	return false
}

// IsWebP reports whether f is any WebP variant.
func IsWebP(f ImageFormat) bool {
	return IsStaticWebP(f) || f == WebPAnimated
}

// IsStaticWebP reports whether f is a single-frame WebP variant.
func IsStaticWebP(f ImageFormat) bool {
	switch f {
	case WebPSimple, WebPLossless, WebPExtended, WebPExtendedWithAlpha:
		return true
	default:
		return false
	}
}
