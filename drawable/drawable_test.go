package drawable

import (
	"image"
	"image/color"
	"testing"

	fimage "github.com/gogpu/fresco/image"
	xdraw "golang.org/x/image/draw"
)

func TestARGBHelpers(t *testing.T) {
	if got := SetAlphaComponent(0x00FF5722, 0xFF); got != 0xFFFF5722 {
		t.Errorf("SetAlphaComponent() = %#08x, want 0xFFFF5722", got)
	}
	if got := SetAlphaComponent(0x80123456, 0x00); got != 0x00123456 {
		t.Errorf("SetAlphaComponent() = %#08x, want 0x00123456", got)
	}
	if got := AlphaComponent(0x7F000000); got != 0x7F {
		t.Errorf("AlphaComponent() = %#x, want 0x7F", got)
	}

	c := ARGBToNRGBA(0xFFFF5722)
	want := color.NRGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}
	if c != want {
		t.Errorf("ARGBToNRGBA() = %v, want %v", c, want)
	}
	if got := NRGBAToARGB(want); got != 0xFFFF5722 {
		t.Errorf("NRGBAToARGB() = %#08x, want 0xFFFF5722", got)
	}
	if got := ColorToARGB(color.RGBA{R: 0xFF, A: 0xFF}); got != 0xFFFF0000 {
		t.Errorf("ColorToARGB(red) = %#08x, want 0xFFFF0000", got)
	}
}

func TestMulAlpha(t *testing.T) {
	tests := []struct{ a, alpha, want uint8 }{
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0},
		{0, 0xFF, 0},
		{0xFF, 0x80, 0x80},
		{0x80, 0x80, 0x40},
	}
	for _, tt := range tests {
		if got := mulAlpha(tt.a, tt.alpha); got != tt.want {
			t.Errorf("mulAlpha(%#x, %#x) = %#x, want %#x", tt.a, tt.alpha, got, tt.want)
		}
	}
}

func TestColorDrawableDraw(t *testing.T) {
	d := NewColorDrawable(0xFFFF5722)
	if d.Color() != 0xFFFF5722 {
		t.Errorf("Color() = %#08x, want 0xFFFF5722", d.Color())
	}
	if d.IntrinsicWidth() != NoIntrinsicSize || d.IntrinsicHeight() != NoIntrinsicSize {
		t.Error("ColorDrawable should have no intrinsic size")
	}

	img := Rasterize(d, 4, 3)
	want := color.NRGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}
	for y := range 3 {
		for x := range 4 {
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestColorDrawableBoundsAndAlpha(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	d := NewColorDrawable(0xFF0000FF)
	d.SetBounds(image.Rect(2, 2, 10, 10))
	d.Draw(dst)

	if got := dst.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside bounds painted: %v", got)
	}
	if got := dst.NRGBAAt(3, 3); got != (color.NRGBA{B: 0xFF, A: 0xFF}) {
		t.Errorf("pixel inside bounds = %v, want opaque blue", got)
	}

	transparent := NewColorDrawable(0xFF00FF00)
	transparent.SetAlpha(0)
	fresh := Rasterize(transparent, 2, 2)
	if got := fresh.NRGBAAt(1, 1); got.A != 0 {
		t.Errorf("alpha 0 drawable painted %v", got)
	}

	half := NewColorDrawable(0xFFFFFFFF)
	half.SetAlpha(0x80)
	if got := Rasterize(half, 1, 1).NRGBAAt(0, 0).A; got < 0x7E || got > 0x82 {
		t.Errorf("half alpha drawable alpha = %#x, want ~0x80", got)
	}
}

func TestColorDrawableMutate(t *testing.T) {
	d := NewColorDrawable(0xFF000000)
	m := d.Mutate()
	m.SetAlpha(0x10)
	if d.Alpha() != 0xFF {
		t.Errorf("Mutate() copy shares state: original alpha = %#x", d.Alpha())
	}
	if m.(*ColorDrawable).Color() != d.Color() {
		t.Error("Mutate() copy lost the color")
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return img
}

func TestBitmapDrawable(t *testing.T) {
	green := color.NRGBA{G: 0xFF, A: 0xFF}
	src := solid(2, 2, green)
	d := NewBitmapDrawable(src, xdraw.NearestNeighbor)

	if d.IntrinsicWidth() != 2 || d.IntrinsicHeight() != 2 {
		t.Errorf("intrinsic size = %dx%d, want 2x2", d.IntrinsicWidth(), d.IntrinsicHeight())
	}
	if d.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("default Bounds() = %v, want image size", d.Bounds())
	}

	out := Rasterize(d, 5, 5)
	for y := range 5 {
		for x := range 5 {
			if got := out.NRGBAAt(x, y); got != green {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, green)
			}
		}
	}
}

func TestBitmapDrawableAlpha(t *testing.T) {
	d := NewBitmapDrawable(solid(1, 1, color.NRGBA{R: 0xFF, A: 0xFF}), nil)
	d.SetAlpha(0x80)
	got := Rasterize(d, 1, 1).NRGBAAt(0, 0)
	if got.A < 0x7E || got.A > 0x82 {
		t.Errorf("alpha = %#x, want ~0x80", got.A)
	}

	d.SetAlpha(0)
	if got := Rasterize(d, 1, 1).NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("alpha 0 drawable painted %v", got)
	}
}

func TestBitmapDrawableNilBitmap(t *testing.T) {
	d := NewBitmapDrawable(nil, nil)
	if d.IntrinsicWidth() != NoIntrinsicSize {
		t.Errorf("IntrinsicWidth() = %d, want NoIntrinsicSize", d.IntrinsicWidth())
	}
	// Must not panic.
	Rasterize(d, 2, 2)
}

func TestBitmapFactory(t *testing.T) {
	f := NewBitmapFactory(nil)
	bm := fimage.NewCloseableStaticBitmap(solid(3, 2, color.NRGBA{A: 0xFF}), fimage.FullQuality)

	if !f.SupportsImageType(bm) {
		t.Fatal("SupportsImageType(static bitmap) = false")
	}
	d := f.CreateDrawable(bm)
	if d.IntrinsicWidth() != 3 || d.IntrinsicHeight() != 2 {
		t.Errorf("drawable intrinsic size = %dx%d, want 3x2", d.IntrinsicWidth(), d.IntrinsicHeight())
	}

	other := &fakeImage{}
	if f.SupportsImageType(other) {
		t.Error("SupportsImageType(other) = true")
	}
	defer func() {
		if recover() == nil {
			t.Error("CreateDrawable on an unsupported image did not panic")
		}
	}()
	f.CreateDrawable(other)
}

func TestFactoryFunc(t *testing.T) {
	f := FactoryFunc{
		Supports: func(img fimage.CloseableImage) bool { _, ok := img.(*fakeImage); return ok },
		Create:   func(fimage.CloseableImage) Drawable { return NewColorDrawable(0xFF000000) },
	}
	var _ Factory = f
	if !f.SupportsImageType(&fakeImage{}) {
		t.Error("SupportsImageType() = false")
	}
	if d, ok := f.CreateDrawable(&fakeImage{}).(*ColorDrawable); !ok || d.Color() != 0xFF000000 {
		t.Error("CreateDrawable() did not call Create")
	}
}

type fakeImage struct{ closed bool }

func (f *fakeImage) Close() error                    { f.closed = true; return nil }
func (f *fakeImage) IsClosed() bool                  { return f.closed }
func (f *fakeImage) SizeInBytes() int                { return 0 }
func (f *fakeImage) Width() int                      { return 0 }
func (f *fakeImage) Height() int                     { return 0 }
func (f *fakeImage) QualityInfo() fimage.QualityInfo { return fimage.FullQuality }
func (f *fakeImage) Extras() map[string]any          { return nil }
func (f *fakeImage) SetExtra(string, any)            {}
func (f *fakeImage) IsStateful() bool                { return false }
