package image

import (
	"image"
	"maps"
)

// CloseableStaticBitmap is a single-frame decoded image.
type CloseableStaticBitmap struct {
	bitmap  image.Image
	width   int
	height  int
	quality QualityInfo
	extras  map[string]any
	closed  bool
}

var _ CloseableImage = (*CloseableStaticBitmap)(nil)

// NewCloseableStaticBitmap wraps img.
func NewCloseableStaticBitmap(img image.Image, quality QualityInfo) *CloseableStaticBitmap {
	b := img.Bounds()
	return &CloseableStaticBitmap{
		bitmap:  img,
		width:   b.Dx(),
		height:  b.Dy(),
		quality: quality,
	}
}

// Bitmap returns the decoded pixels, or nil once closed.
func (b *CloseableStaticBitmap) Bitmap() image.Image {
	return b.bitmap
}

// Close releases the bitmap. Calling Close more than once has no effect.
func (b *CloseableStaticBitmap) Close() error {
	b.closed = true
	b.bitmap = nil
	return nil
}

func (b *CloseableStaticBitmap) IsClosed() bool { return b.closed }

// SizeInBytes assumes four bytes per pixel. It is zero once closed.
func (b *CloseableStaticBitmap) SizeInBytes() int {
	if b.closed {
		return 0
	}
	return b.width * b.height * 4
}

func (b *CloseableStaticBitmap) Width() int               { return b.width }
func (b *CloseableStaticBitmap) Height() int              { return b.height }
func (b *CloseableStaticBitmap) QualityInfo() QualityInfo { return b.quality }
func (b *CloseableStaticBitmap) IsStateful() bool         { return false }

func (b *CloseableStaticBitmap) Extras() map[string]any {
	if b.extras == nil {
		return map[string]any{}
	}
	return b.extras
}

func (b *CloseableStaticBitmap) SetExtra(key string, value any) {
	if b.extras == nil {
		b.extras = make(map[string]any)
	}
	b.extras[key] = value
}

// SetExtras merges extras into the image metadata.
func (b *CloseableStaticBitmap) SetExtras(extras map[string]any) {
	if len(extras) == 0 {
		return
	}
	if b.extras == nil {
		b.extras = make(map[string]any, len(extras))
	}
	maps.Copy(b.extras, extras)
}
