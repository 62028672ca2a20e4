package vito

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/fresco/drawable"
	fimage "github.com/gogpu/fresco/image"
	xdraw "golang.org/x/image/draw"
)

var nextImageID atomic.Int64

// Drawable is a FrescoDrawable that also draws its current image. It is
// safe for concurrent use.
type Drawable struct {
	id   int64
	perf ImagePerfListener

	drawMu sync.Mutex // serializes Draw calls on the actual drawable

	mu             sync.Mutex
	callerContext  any
	mutate         bool
	image          fimage.CloseableImage
	actual         drawable.Drawable
	fetchSubmitted bool
	request        *ImageRequest
	visibility     VisibilityCallback
	visible        bool
	persistent     func()
	bounds         image.Rectangle
	alpha          uint8
}

var (
	_ FrescoDrawable    = (*Drawable)(nil)
	_ drawable.Drawable = (*Drawable)(nil)
)

// NewDrawable returns an empty drawable with a new image id. A nil perf
// listener is replaced by NoopPerfListener.
func NewDrawable(perf ImagePerfListener) *Drawable {
	if perf == nil {
		perf = NoopPerfListener{}
	}
	return &Drawable{
		id:    nextImageID.Add(1),
		perf:  perf,
		alpha: 0xFF,
	}
}

func (d *Drawable) ImageID() int64                       { return d.id }
func (d *Drawable) ImagePerfListener() ImagePerfListener { return d.perf }

func (d *Drawable) CallerContext() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.callerContext
}

func (d *Drawable) SetMutateDrawables(mutate bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mutate = mutate
}

func (d *Drawable) ActualImageDrawable() drawable.Drawable {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actual
}

func (d *Drawable) HasImage() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actual != nil
}

func (d *Drawable) IsFetchSubmitted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fetchSubmitted
}

func (d *Drawable) ImageRequest() *ImageRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.request
}

func (d *Drawable) SetImageRequest(req *ImageRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.request = req
}

func (d *Drawable) SetVisibilityCallback(cb VisibilityCallback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visibility = cb
}

func (d *Drawable) PersistentFetchRunnable() func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.persistent
}

func (d *Drawable) SetPersistentFetchRunnable(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.persistent = fn
}

// SetVisible records whether the drawable is on screen and notifies the
// visibility callback when that changes.
func (d *Drawable) SetVisible(visible bool) {
	d.mu.Lock()
	changed := d.visible != visible
	d.visible = visible
	cb := d.visibility
	d.mu.Unlock()

	if changed && cb != nil {
		cb.OnVisibilityChange(visible)
	}
}

// IsVisible reports the value last passed to SetVisible.
func (d *Drawable) IsVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// Image returns the decoded image currently shown, or nil.
func (d *Drawable) Image() fimage.CloseableImage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.image
}

func (d *Drawable) Bounds() image.Rectangle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bounds
}

func (d *Drawable) SetBounds(r image.Rectangle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bounds = r
}

func (d *Drawable) Alpha() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alpha
}

func (d *Drawable) SetAlpha(a uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alpha = a
}

func (d *Drawable) IntrinsicWidth() int {
	if a := d.ActualImageDrawable(); a != nil {
		return a.IntrinsicWidth()
	}
	return drawable.NoIntrinsicSize
}

func (d *Drawable) IntrinsicHeight() int {
	if a := d.ActualImageDrawable(); a != nil {
		return a.IntrinsicHeight()
	}
	return drawable.NoIntrinsicSize
}

// Draw draws the current image into the drawable's bounds and notifies the
// visibility callback. Nothing is drawn while there is no image. The state
// lock is not held while drawing.
func (d *Drawable) Draw(dst xdraw.Image) {
	d.mu.Lock()
	actual, bounds, alpha, cb := d.actual, d.bounds, d.alpha, d.visibility
	d.mu.Unlock()

	if actual != nil {
		d.drawMu.Lock()
		actual.SetBounds(bounds)
		actual.SetAlpha(alpha)
		actual.Draw(dst)
		d.drawMu.Unlock()
	}
	if cb != nil {
		cb.OnDraw()
	}
}

// Mutate returns d. A Drawable never shares its state.
func (d *Drawable) Mutate() drawable.Drawable {
	return d
}

// setImage shows img through actual if req is still the current request,
// and returns the image it replaces.
func (d *Drawable) setImage(req *ImageRequest, img fimage.CloseableImage, actual drawable.Drawable) (fimage.CloseableImage, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.request != req {
		return nil, false
	}
	if d.mutate && actual != nil {
		actual = actual.Mutate()
	}
	prev := d.image
	d.image = img
	d.actual = actual
	return prev, true
}

func (d *Drawable) startFetch(req *ImageRequest, callerContext any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.request = req
	d.callerContext = callerContext
	d.fetchSubmitted = true
}

// reset clears the fetch state and returns the image that was shown. The
// persistent fetch runnable and the visibility callback are kept.
func (d *Drawable) reset() fimage.CloseableImage {
	d.mu.Lock()
	defer d.mu.Unlock()
	img := d.image
	d.image = nil
	d.actual = nil
	d.request = nil
	d.fetchSubmitted = false
	return img
}
