// Package vito binds images to on-screen drawables.
//
// FrescoDrawable is the contract an image view's drawable fulfils towards
// the loading machinery. Drawable implements it together with
// drawable.Drawable, and Controller fetches images into it through a
// fresco.Pipeline.
package vito

import (
	"time"

	"github.com/gogpu/fresco/decoder"
	"github.com/gogpu/fresco/drawable"
)

// FrescoDrawable is implemented by drawables that display a fetched image.
//
// Every setter replaces the previous value; nothing is queued or merged.
type FrescoDrawable interface {
	// ImageID identifies the drawable for the lifetime of the process.
	ImageID() int64

	// CallerContext returns the value passed with the last fetch. It is
	// opaque to vito and only used for logging and perf reporting.
	CallerContext() any

	ImagePerfListener() ImagePerfListener

	// SetMutateDrawables controls whether drawables created for new images
	// are mutated before use, so that bounds and alpha changes do not leak
	// into state shared with other users of the same drawable.
	SetMutateDrawables(mutate bool)

	// ActualImageDrawable returns the drawable of the current image, or nil.
	ActualImageDrawable() drawable.Drawable

	HasImage() bool
	IsFetchSubmitted() bool

	ImageRequest() *ImageRequest
	// SetImageRequest replaces the current request. The drawable takes
	// ownership of req; the caller must not modify it afterwards.
	SetImageRequest(req *ImageRequest)

	SetVisibilityCallback(cb VisibilityCallback)

	// PersistentFetchRunnable returns the function that refetches the image
	// after the drawable has been released and attached again, or nil.
	PersistentFetchRunnable() func()
	SetPersistentFetchRunnable(fn func())
}

// ImageRequest describes the image to show in a drawable.
type ImageRequest struct {
	// Source is the path of the encoded image on the controller's file system.
	Source string

	// Options controls decoding.
	Options decoder.Options
}

// Equal reports whether r and other request the same image. Two nil requests
// are equal.
func (r *ImageRequest) Equal(other *ImageRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return *r == *other
}

// VisibilityCallback is notified when a drawable is shown, hidden or drawn.
type VisibilityCallback interface {
	OnVisibilityChange(visible bool)
	OnDraw()
}

// ImagePerfListener receives fetch lifecycle events of a drawable. Methods
// are called synchronously from Controller and must not block.
type ImagePerfListener interface {
	OnImageFetch(d FrescoDrawable)
	OnImageSuccess(d FrescoDrawable, elapsed time.Duration)
	OnImageError(d FrescoDrawable, err error)
	OnImageRelease(d FrescoDrawable)
}

// NoopPerfListener ignores every event.
type NoopPerfListener struct{}

var _ ImagePerfListener = NoopPerfListener{}

func (NoopPerfListener) OnImageFetch(FrescoDrawable)                  {}
func (NoopPerfListener) OnImageSuccess(FrescoDrawable, time.Duration) {}
func (NoopPerfListener) OnImageError(FrescoDrawable, error)           {}
func (NoopPerfListener) OnImageRelease(FrescoDrawable)                {}
