package imageformat

// Magic numbers of the default formats.
var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF}
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	gif87a     = MustASCIIBytes("GIF87a")
	gif89a     = MustASCIIBytes("GIF89a")
	bmpHeader  = MustASCIIBytes("BM")
	icoHeader  = []byte{0x00, 0x00, 0x01, 0x00}
	tiffLE     = []byte{'I', 'I', 0x2A, 0x00}
	tiffBE     = []byte{'M', 'M', 0x00, 0x2A}

	riffTag    = MustASCIIBytes("RIFF")
	webpTag    = MustASCIIBytes("WEBP")
	vp8Tag     = MustASCIIBytes("VP8 ")
	vp8lTag    = MustASCIIBytes("VP8L")
	vp8xTag    = MustASCIIBytes("VP8X")
	heifFtyp   = MustASCIIBytes("ftyp")
	heifBrands = [][]byte{
		MustASCIIBytes("heic"),
		MustASCIIBytes("heix"),
		MustASCIIBytes("hevc"),
		MustASCIIBytes("hevx"),
		MustASCIIBytes("mif1"),
		MustASCIIBytes("msf1"),
	}
)

const (
	// simpleWebPHeaderLength covers "RIFF" size "WEBP" and the chunk tag.
	simpleWebPHeaderLength = 16
	// extendedWebPHeaderLength additionally covers the VP8X flags byte.
	extendedWebPHeaderLength = 21
	heifHeaderLength         = 12

	vp8xFlagsOffset = 20
	vp8xAlphaFlag   = 0x10
	vp8xAnimFlag    = 0x02
)

// DefaultChecker recognizes the formats listed by Defaults.
//
// Unlike single-format checkers it does not require HeaderSize bytes: each
// format is matched as soon as enough bytes for its own signature are
// available, so a 3-byte JPEG stream is still recognized.
type DefaultChecker struct{}

var _ FormatChecker = DefaultChecker{}

// HeaderSize returns the longest signature length, that of extended WebP.
func (DefaultChecker) HeaderSize() int {
	return extendedWebPHeaderLength
}

// DetermineFormat matches header against every default signature.
func (DefaultChecker) DetermineFormat(header []byte) (ImageFormat, bool) {
	if f, ok := webpFormat(header); ok {
		return f, true
	}
	switch {
	case StartsWithPattern(header, jpegHeader):
		return JPEG, true
	case StartsWithPattern(header, pngHeader):
		return PNG, true
	case StartsWithPattern(header, gif87a), StartsWithPattern(header, gif89a):
		return GIF, true
	case StartsWithPattern(header, bmpHeader):
		return BMP, true
	case StartsWithPattern(header, icoHeader):
		return ICO, true
	case StartsWithPattern(header, tiffLE), StartsWithPattern(header, tiffBE):
		return TIFF, true
	case isHEIF(header):
		return HEIF, true
	}
	return Unknown, false
}

func webpFormat(h []byte) (ImageFormat, bool) {
	if len(h) < simpleWebPHeaderLength ||
		!StartsWithPattern(h, riffTag) || !HasPatternAt(h, webpTag, 8) {
		return Unknown, false
	}
	switch {
	case HasPatternAt(h, vp8Tag, 12):
		return WebPSimple, true
	case HasPatternAt(h, vp8lTag, 12):
		return WebPLossless, true
	case HasPatternAt(h, vp8xTag, 12):
		if len(h) < extendedWebPHeaderLength {
			return Unknown, false
		}
		flags := h[vp8xFlagsOffset]
		switch {
		case flags&vp8xAnimFlag != 0:
			return WebPAnimated, true
		case flags&vp8xAlphaFlag != 0:
			return WebPExtendedWithAlpha, true
		default:
			return WebPExtended, true
		}
	}
	return Unknown, false
}

func isHEIF(h []byte) bool {
	if len(h) < heifHeaderLength || !HasPatternAt(h, heifFtyp, 4) {
		return false
	}
	for _, brand := range heifBrands {
		if HasPatternAt(h, brand, 8) {
			return true
		}
	}
	return false
}
