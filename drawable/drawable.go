// Package drawable renders decoded images into draw.Image destinations.
//
// A Drawable is a renderable primitive with bounds and an alpha. A Factory
// turns a decoded CloseableImage into a Drawable; factories are looked up by
// asking each one whether it supports the image's concrete type.
package drawable

import (
	"image"

	fimage "github.com/gogpu/fresco/image"
	xdraw "golang.org/x/image/draw"
)

// NoIntrinsicSize is returned by IntrinsicWidth and IntrinsicHeight for
// drawables that fill whatever bounds they are given.
const NoIntrinsicSize = -1

// Drawable is something that can draw itself into a rectangle.
type Drawable interface {
	// Bounds returns the destination rectangle Draw renders into.
	Bounds() image.Rectangle
	SetBounds(r image.Rectangle)

	// IntrinsicWidth and IntrinsicHeight return the natural size, or
	// NoIntrinsicSize.
	IntrinsicWidth() int
	IntrinsicHeight() int

	// Alpha returns the opacity applied when drawing, 0 to 255.
	Alpha() uint8
	SetAlpha(a uint8)

	// Draw composites the drawable over dst within Bounds.
	Draw(dst xdraw.Image)

	// Mutate returns a drawable whose state can be changed without
	// affecting other drawables created for the same image.
	Mutate() Drawable
}

// Factory creates drawables for the image types it supports.
//
// CreateDrawable must only be called after SupportsImageType returned true
// for the same image; implementations panic otherwise.
type Factory interface {
	SupportsImageType(img fimage.CloseableImage) bool
	CreateDrawable(img fimage.CloseableImage) Drawable
}

// FactoryFunc pairs a type predicate and a constructor into a Factory.
type FactoryFunc struct {
	Supports func(fimage.CloseableImage) bool
	Create   func(fimage.CloseableImage) Drawable
}

func (f FactoryFunc) SupportsImageType(img fimage.CloseableImage) bool { return f.Supports(img) }

func (f FactoryFunc) CreateDrawable(img fimage.CloseableImage) Drawable { return f.Create(img) }

// Rasterize draws d into a new NRGBA image of the given size, with d's
// bounds set to cover it.
func Rasterize(d Drawable, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	d.SetBounds(dst.Bounds())
	d.Draw(dst)
	return dst
}
