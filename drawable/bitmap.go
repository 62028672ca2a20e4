package drawable

import (
	"image"
	"image/color"

	fimage "github.com/gogpu/fresco/image"
	xdraw "golang.org/x/image/draw"
)

// BitmapDrawable scales a decoded image into its bounds.
type BitmapDrawable struct {
	bitmap image.Image
	scaler xdraw.Interpolator
	alpha  uint8
	bounds image.Rectangle
}

var _ Drawable = (*BitmapDrawable)(nil)

// NewBitmapDrawable returns a drawable for img using scaler for resampling.
// A nil scaler selects ApproxBiLinear. Bounds default to the image size at
// the origin.
func NewBitmapDrawable(img image.Image, scaler xdraw.Interpolator) *BitmapDrawable {
	if scaler == nil {
		scaler = xdraw.ApproxBiLinear
	}
	d := &BitmapDrawable{bitmap: img, scaler: scaler, alpha: 0xFF}
	if img != nil {
		d.bounds = image.Rectangle{Max: img.Bounds().Size()}
	}
	return d
}

// Bitmap returns the wrapped image.
func (d *BitmapDrawable) Bitmap() image.Image {
	return d.bitmap
}

func (d *BitmapDrawable) Bounds() image.Rectangle     { return d.bounds }
func (d *BitmapDrawable) SetBounds(r image.Rectangle) { d.bounds = r }
func (d *BitmapDrawable) Alpha() uint8                { return d.alpha }
func (d *BitmapDrawable) SetAlpha(a uint8)            { d.alpha = a }

func (d *BitmapDrawable) IntrinsicWidth() int {
	if d.bitmap == nil {
		return NoIntrinsicSize
	}
	return d.bitmap.Bounds().Dx()
}

func (d *BitmapDrawable) IntrinsicHeight() int {
	if d.bitmap == nil {
		return NoIntrinsicSize
	}
	return d.bitmap.Bounds().Dy()
}

// Draw scales the bitmap into Bounds and composites it over dst.
func (d *BitmapDrawable) Draw(dst xdraw.Image) {
	if d.bitmap == nil || d.alpha == 0 || d.bounds.Empty() {
		return
	}
	var opts *xdraw.Options
	if d.alpha != 0xFF {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha{A: d.alpha})}
	}
	d.scaler.Scale(dst, d.bounds, d.bitmap, d.bitmap.Bounds(), xdraw.Over, opts)
}

// Mutate returns a copy sharing the (read-only) bitmap.
func (d *BitmapDrawable) Mutate() Drawable {
	cp := *d
	return &cp
}

// BitmapFactory creates BitmapDrawables for *image.CloseableStaticBitmap.
type BitmapFactory struct {
	scaler xdraw.Interpolator
}

var _ Factory = (*BitmapFactory)(nil)

// NewBitmapFactory returns a factory whose drawables resample with scaler.
// A nil scaler selects ApproxBiLinear.
func NewBitmapFactory(scaler xdraw.Interpolator) *BitmapFactory {
	return &BitmapFactory{scaler: scaler}
}

// SupportsImageType reports whether img is a *image.CloseableStaticBitmap.
func (f *BitmapFactory) SupportsImageType(img fimage.CloseableImage) bool {
	_, ok := img.(*fimage.CloseableStaticBitmap)
	return ok
}

// CreateDrawable panics if img is not a *image.CloseableStaticBitmap.
func (f *BitmapFactory) CreateDrawable(img fimage.CloseableImage) Drawable {
	return NewBitmapDrawable(img.(*fimage.CloseableStaticBitmap).Bitmap(), f.scaler)
}
