package imageformat

import (
	"errors"
	"testing"
)

func TestImageFormat(t *testing.T) {
	f := New("IMAGE_FORMAT_TEST", "test")
	if f.Name() != "IMAGE_FORMAT_TEST" {
		t.Errorf("Name() = %q, want %q", f.Name(), "IMAGE_FORMAT_TEST")
	}
	if f.FileExtension() != "test" {
		t.Errorf("FileExtension() = %q, want %q", f.FileExtension(), "test")
	}
	if f.String() != f.Name() {
		t.Errorf("String() = %q, want %q", f.String(), f.Name())
	}
	if f != New("IMAGE_FORMAT_TEST", "test") {
		t.Error("formats with equal name and extension should compare equal")
	}
	if f.IsUnknown() {
		t.Error("IsUnknown() = true for a named format")
	}
	if !Unknown.IsUnknown() || !(ImageFormat{}).IsUnknown() {
		t.Error("Unknown and the zero value should report IsUnknown")
	}
}

func TestImageFormatAsMapKey(t *testing.T) {
	m := map[ImageFormat]int{PNG: 1, JPEG: 2}
	if m[New("PNG", "png")] != 1 {
		t.Error("lookup by an equal PNG value failed")
	}
}

func TestASCIIBytes(t *testing.T) {
	b, err := ASCIIBytes("<color>")
	if err != nil {
		t.Fatalf("ASCIIBytes() error = %v", err)
	}
	if string(b) != "<color>" {
		t.Errorf("ASCIIBytes() = %q, want %q", b, "<color>")
	}

	if _, err := ASCIIBytes("größe"); !errors.Is(err, ErrNonASCII) {
		t.Errorf("ASCIIBytes(non-ASCII) error = %v, want ErrNonASCII", err)
	}
}

func TestMustASCIIBytesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustASCIIBytes did not panic on non-ASCII input")
		}
	}()
	MustASCIIBytes("é")
}

func TestPatternHelpers(t *testing.T) {
	data := []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
	tests := []struct {
		name    string
		pattern string
		offset  int
		want    bool
	}{
		{"prefix", "RIFF", 0, true},
		{"at offset", "WEBP", 8, true},
		{"wrong offset", "WEBP", 7, false},
		{"past end", "VP8 X", 12, false},
		{"negative offset", "RIFF", -1, false},
		{"empty pattern", "", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPatternAt(data, []byte(tt.pattern), tt.offset); got != tt.want {
				t.Errorf("HasPatternAt(%q, %d) = %v, want %v", tt.pattern, tt.offset, got, tt.want)
			}
		})
	}

	if !StartsWithPattern(data, []byte("RIFF")) {
		t.Error("StartsWithPattern(RIFF) = false")
	}
	if StartsWithPattern([]byte("RI"), []byte("RIFF")) {
		t.Error("StartsWithPattern on short data = true")
	}
	if got := IndexOfPattern(data, []byte("WEBP")); got != 8 {
		t.Errorf("IndexOfPattern(WEBP) = %d, want 8", got)
	}
	if got := IndexOfPattern(data, []byte("PNG")); got != -1 {
		t.Errorf("IndexOfPattern(PNG) = %d, want -1", got)
	}
}

func webpHeader(chunk string, flags byte) []byte {
	h := []byte("RIFF\x10\x00\x00\x00WEBP" + chunk + "\x0a\x00\x00\x00")
	return append(h, flags)
}

func TestDefaultCheckerDetermineFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   ImageFormat
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, JPEG},
		{"jpeg minimal", []byte{0xFF, 0xD8, 0xFF}, JPEG},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}, PNG},
		{"gif87a", []byte("GIF87a...."), GIF},
		{"gif89a", []byte("GIF89a...."), GIF},
		{"bmp", []byte("BM\x36\x00"), BMP},
		{"ico", []byte{0, 0, 1, 0, 1, 0}, ICO},
		{"tiff little endian", []byte{'I', 'I', 0x2A, 0x00, 8, 0}, TIFF},
		{"tiff big endian", []byte{'M', 'M', 0x00, 0x2A, 0, 8}, TIFF},
		{"heif", []byte("\x00\x00\x00\x18ftypheic"), HEIF},
		{"heif mif1", []byte("\x00\x00\x00\x18ftypmif1"), HEIF},
		{"webp simple", webpHeader("VP8 ", 0), WebPSimple},
		{"webp lossless", webpHeader("VP8L", 0), WebPLossless},
		{"webp extended", webpHeader("VP8X", 0), WebPExtended},
		{"webp extended alpha", webpHeader("VP8X", 0x10), WebPExtendedWithAlpha},
		{"webp animated", webpHeader("VP8X", 0x12), WebPAnimated},
		{"truncated png", []byte{0x89, 'P', 'N'}, Unknown},
		{"text", []byte("hello, world"), Unknown},
		{"empty", nil, Unknown},
	}
	var c DefaultChecker
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.DetermineFormat(tt.header)
			if got != tt.want {
				t.Errorf("DetermineFormat() = %v, want %v", got, tt.want)
			}
			if ok != (tt.want != Unknown) {
				t.Errorf("DetermineFormat() ok = %v, want %v", ok, tt.want != Unknown)
			}
		})
	}
}

func TestDefaultsAreRecognized(t *testing.T) {
	for _, f := range Defaults() {
		if !IsDefault(f) {
			t.Errorf("IsDefault(%v) = false", f)
		}
	}
	if IsDefault(New("IMAGE_FORMAT_COLOR", "color")) {
		t.Error("IsDefault(custom) = true")
	}
}

func TestWebPPredicates(t *testing.T) {
	if !IsWebP(WebPAnimated) || IsStaticWebP(WebPAnimated) {
		t.Error("animated WebP misclassified")
	}
	if !IsStaticWebP(WebPLossless) || !IsWebP(WebPLossless) {
		t.Error("lossless WebP misclassified")
	}
	if IsWebP(PNG) {
		t.Error("IsWebP(PNG) = true")
	}
}
