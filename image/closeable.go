// Package image defines the in-memory image types produced by decoders.
//
// A CloseableImage is owned by exactly one holder at a time; the holder
// calls Close once the image is no longer displayed. Implementations in this
// package are not synchronized: a Close racing with a read of the pixel
// data must be serialized by the caller.
package image

import (
	"io"
	"math"
)

// CloseableImage is a decoded image that holds resources until closed.
//
// Close must be idempotent. After Close, the image must not be rendered.
type CloseableImage interface {
	io.Closer

	// IsClosed reports whether Close has been called.
	IsClosed() bool

	// SizeInBytes returns the approximate memory held by the image.
	SizeInBytes() int

	Width() int
	Height() int

	QualityInfo() QualityInfo

	// Extras returns metadata attached to the image. The returned map must
	// not be modified.
	Extras() map[string]any
	SetExtra(key string, value any)

	// IsStateful reports whether the image holds per-consumer state
	// (animation position, for example) and therefore cannot be shared.
	IsStateful() bool
}

// QualityInfo describes how complete a decoded image is.
type QualityInfo struct {
	// Quality is a monotonically increasing scan number for progressive
	// images, or math.MaxInt32 for fully decoded ones.
	Quality int

	// GoodEnough reports that the quality suffices for display.
	GoodEnough bool

	// Full reports that the image is decoded completely.
	Full bool
}

// FullQuality is the quality of a completely decoded image.
var FullQuality = QualityInfo{Quality: math.MaxInt32, GoodEnough: true, Full: true}
