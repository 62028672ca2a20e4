package decoder

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling filter used when downscaling.
type Interpolation uint8

const (
	// ApproxBiLinear is fast and good enough for thumbnails.
	ApproxBiLinear Interpolation = iota
	NearestNeighbor
	BiLinear
	CatmullRom
)

// Interpolator returns the x/image/draw interpolator for i.
func (i Interpolation) Interpolator() xdraw.Interpolator {
	switch i {
	case NearestNeighbor:
		return xdraw.NearestNeighbor
	case BiLinear:
		return xdraw.BiLinear
	case CatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}

// String returns the filter name.
func (i Interpolation) String() string {
	switch i {
	case NearestNeighbor:
		return "nearest"
	case BiLinear:
		return "bilinear"
	case CatmullRom:
		return "catmullrom"
	default:
		return "approx-bilinear"
	}
}

// ParseInterpolation returns the Interpolation named s, as returned by
// Interpolation.String.
func ParseInterpolation(s string) (Interpolation, error) {
	for _, i := range []Interpolation{ApproxBiLinear, NearestNeighbor, BiLinear, CatmullRom} {
		if i.String() == s {
			return i, nil
		}
	}
	return ApproxBiLinear, fmt.Errorf("decoder: unknown interpolation %q", s)
}

// Options configures a decode. The zero value decodes at full size.
type Options struct {
	// MaxWidth and MaxHeight bound the decoded size. Larger images are
	// downscaled preserving the aspect ratio. Zero means unbounded.
	MaxWidth  int
	MaxHeight int

	// Interpolation is the filter used for downscaling.
	Interpolation Interpolation

	// ForceStaticImage decodes only the first frame of animated images and
	// skips reading the remaining frames.
	ForceStaticImage bool
}

// fitSize returns the size w x h must be scaled to so that it fits the
// bounds in opts, and whether scaling is needed at all.
func (o Options) fitSize(w, h int) (int, int, bool) {
	if w <= 0 || h <= 0 {
		return w, h, false
	}
	scale := 1.0
	if o.MaxWidth > 0 && w > o.MaxWidth {
		scale = min(scale, float64(o.MaxWidth)/float64(w))
	}
	if o.MaxHeight > 0 && h > o.MaxHeight {
		scale = min(scale, float64(o.MaxHeight)/float64(h))
	}
	if scale >= 1 {
		return w, h, false
	}
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale)), true
}

// Downscale returns img scaled to fit opts, or img itself when it already fits.
func Downscale(img image.Image, opts Options) image.Image {
	sr := img.Bounds()
	w, h, ok := opts.fitSize(sr.Dx(), sr.Dy())
	if !ok {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	opts.Interpolation.Interpolator().Scale(dst, dst.Bounds(), img, sr, xdraw.Src, nil)
	return dst
}
