package drawable

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ColorDrawable fills its bounds with a single color.
type ColorDrawable struct {
	color  uint32
	alpha  uint8
	bounds image.Rectangle
}

var _ Drawable = (*ColorDrawable)(nil)

// NewColorDrawable returns a drawable for the ARGB color argb.
func NewColorDrawable(argb uint32) *ColorDrawable {
	return &ColorDrawable{color: argb, alpha: 0xFF}
}

// Color returns the ARGB color the drawable was created with.
func (d *ColorDrawable) Color() uint32 {
	return d.color
}

// SetColor replaces the color.
func (d *ColorDrawable) SetColor(argb uint32) {
	d.color = argb
}

func (d *ColorDrawable) Bounds() image.Rectangle     { return d.bounds }
func (d *ColorDrawable) SetBounds(r image.Rectangle) { d.bounds = r }
func (d *ColorDrawable) IntrinsicWidth() int         { return NoIntrinsicSize }
func (d *ColorDrawable) IntrinsicHeight() int        { return NoIntrinsicSize }
func (d *ColorDrawable) Alpha() uint8                { return d.alpha }
func (d *ColorDrawable) SetAlpha(a uint8)            { d.alpha = a }

// Draw composites the color over dst. The color's own alpha is multiplied by
// the drawable alpha.
func (d *ColorDrawable) Draw(dst xdraw.Image) {
	c := ARGBToNRGBA(d.color)
	c.A = mulAlpha(c.A, d.alpha)
	if c.A == 0 {
		return
	}
	r := d.bounds.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	op := xdraw.Over
	if c.A == 0xFF {
		op = xdraw.Src
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, op)
}

// Mutate returns a copy.
func (d *ColorDrawable) Mutate() Drawable {
	cp := *d
	return &cp
}
