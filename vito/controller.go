package vito

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/fresco"
	"github.com/gogpu/fresco/clock"
	"github.com/gogpu/fresco/decoder"
	"github.com/gogpu/fresco/drawable"
	fimage "github.com/gogpu/fresco/image"
	"github.com/spf13/afero"
)

// Controller errors.
var (
	// ErrNilRequest is returned by Fetch when no request is given.
	ErrNilRequest = errors.New("vito: nil image request")

	// ErrRequestChanged is returned by Fetch when the drawable was given
	// another request, or was released, while the image was loading. The
	// loaded image is discarded.
	ErrRequestChanged = errors.New("vito: image request changed during fetch")
)

// ControllerOption configures a Controller during creation.
type ControllerOption func(*Controller)

// WithFs sets the file system image sources are read from. The default is
// the OS file system.
func WithFs(fs afero.Fs) ControllerOption {
	return func(c *Controller) {
		c.fs = fs
	}
}

// WithContext sets the context of fetches run by persistent fetch runnables,
// such as those started by Reattach. Canceling it stops those fetches. The
// default is context.Background().
func WithContext(ctx context.Context) ControllerOption {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// WithClock sets the clock used to measure fetch latency.
func WithClock(clk clock.MonotonicNanoClock) ControllerOption {
	return func(c *Controller) {
		c.clock = clk
	}
}

// Controller fetches images into Drawables.
type Controller struct {
	pipeline *fresco.Pipeline
	fs       afero.Fs
	clock    clock.MonotonicNanoClock
	ctx      context.Context
}

// NewController returns a controller loading images through p.
func NewController(p *fresco.Pipeline, opts ...ControllerOption) *Controller {
	c := &Controller{
		pipeline: p,
		fs:       afero.NewOsFs(),
		clock:    clock.Get(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch loads the image of req into d. If d already shows the image of an
// equal request nothing happens. Otherwise the current image is released,
// req becomes d's request, and on success the decoded image replaces it.
//
// Fetch also installs a persistent fetch runnable on d that repeats the
// fetch; Reattach runs it. The runnable fetches with the controller's
// context (see WithContext), not ctx.
func (c *Controller) Fetch(ctx context.Context, d *Drawable, req *ImageRequest, callerContext any) error {
	if req == nil {
		return ErrNilRequest
	}
	if d.HasImage() && d.ImageRequest().Equal(req) {
		return nil
	}
	if d.HasImage() || d.IsFetchSubmitted() {
		c.Release(d)
	}

	d.startFetch(req, callerContext)
	d.SetPersistentFetchRunnable(func() {
		if err := c.Fetch(c.ctx, d, req, callerContext); err != nil {
			fresco.Logger().Debug("vito: persistent fetch failed", "image_id", d.ImageID(), "source", req.Source, "err", err)
		}
	})
	perf := d.ImagePerfListener()
	perf.OnImageFetch(d)
	start := c.clock.NowNanos()

	img, actual, err := c.load(ctx, req)
	if err != nil {
		fresco.Logger().Debug("vito: fetch failed",
			"image_id", d.ImageID(),
			"source", req.Source,
			"caller_context", callerContext,
			"outcome", decoder.Classify(err).String(),
			"err", err)
		perf.OnImageError(d, err)
		return err
	}

	prev, ok := d.setImage(req, img, actual)
	if !ok {
		_ = img.Close()
		perf.OnImageError(d, ErrRequestChanged)
		return ErrRequestChanged
	}
	if prev != nil {
		_ = prev.Close()
	}

	elapsed := clock.SinceNanos(c.clock, start)
	fresco.Logger().Info("vito: fetch done",
		"image_id", d.ImageID(),
		"source", req.Source,
		"caller_context", callerContext,
		"elapsed", elapsed)
	perf.OnImageSuccess(d, elapsed)
	return nil
}

func (c *Controller) load(ctx context.Context, req *ImageRequest) (fimage.CloseableImage, drawable.Drawable, error) {
	encoded, err := fimage.NewEncodedImageFromFile(c.fs, req.Source)
	if err != nil {
		return nil, nil, &decoder.ReadError{Source: req.Source, Err: err}
	}
	img, actual, err := c.pipeline.Load(ctx, encoded, req.Options)
	if err != nil {
		return nil, nil, fmt.Errorf("vito: fetch %s: %w", req.Source, err)
	}
	return img, actual, nil
}

// Release closes the image shown by d and clears its request and fetch
// state. The persistent fetch runnable is kept so that Reattach can restore
// the image. The perf listener is notified only when an image was shown.
func (c *Controller) Release(d *Drawable) {
	img := d.reset()
	if img == nil {
		return
	}
	_ = img.Close()
	d.ImagePerfListener().OnImageRelease(d)
}

// Reattach runs d's persistent fetch runnable when d has no image. It
// reports whether a fetch was run.
func (c *Controller) Reattach(d *Drawable) bool {
	if d.HasImage() {
		return false
	}
	fn := d.PersistentFetchRunnable()
	if fn == nil {
		return false
	}
	fn()
	return true
}
