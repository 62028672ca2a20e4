package fresco

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/fresco/clock"
	"github.com/gogpu/fresco/decoder"
	"github.com/gogpu/fresco/drawable"
	fimage "github.com/gogpu/fresco/image"
	"github.com/gogpu/fresco/imageformat"
)

// DecodeEvent describes one finished Pipeline.Decode call.
type DecodeEvent struct {
	Source  string
	Format  imageformat.ImageFormat
	Outcome decoder.Outcome
	Elapsed time.Duration
	Err     error
}

// Observer is notified after every decode. It is called synchronously on the
// decoding goroutine and must not block.
type Observer interface {
	ObserveDecode(DecodeEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(DecodeEvent)

// ObserveDecode calls f(e).
func (f ObserverFunc) ObserveDecode(e DecodeEvent) { f(e) }

// Pipeline detects, decodes and renders encoded images using the plugins of
// a Registry. It is safe for concurrent use.
type Pipeline struct {
	registry *Registry
	clock    clock.MonotonicNanoClock
	observer Observer
}

// NewPipeline returns a pipeline over r.
func NewPipeline(r *Registry, opts ...PipelineOption) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		registry: r,
		clock:    o.clock,
		observer: o.observer,
	}
}

// Registry returns the registry the pipeline decodes with.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Decode decodes encoded with the decoder registered for its format. When
// the format is unknown it is detected from the leading bytes of the stream,
// which are not consumed, and recorded on encoded.
func (p *Pipeline) Decode(ctx context.Context, encoded *fimage.EncodedImage, opts decoder.Options) (fimage.CloseableImage, error) {
	start := p.clock.NowNanos()
	img, format, err := p.decode(ctx, encoded, opts)
	elapsed := clock.SinceNanos(p.clock, start)

	outcome := decoder.Classify(err)
	Logger().Debug("fresco: decode",
		"source", encoded.Source(),
		"format", format.Name(),
		"outcome", outcome.String(),
		"elapsed", elapsed,
		"err", err)
	if p.observer != nil {
		p.observer.ObserveDecode(DecodeEvent{
			Source:  encoded.Source(),
			Format:  format,
			Outcome: outcome,
			Elapsed: elapsed,
			Err:     err,
		})
	}
	return img, err
}

func (p *Pipeline) decode(ctx context.Context, encoded *fimage.EncodedImage, opts decoder.Options) (fimage.CloseableImage, imageformat.ImageFormat, error) {
	if err := ctx.Err(); err != nil {
		return nil, encoded.Format(), err
	}

	input := encoded
	format := encoded.Format()
	if format.IsUnknown() {
		rc, err := encoded.Open()
		if err != nil {
			return nil, format, &decoder.ReadError{Source: encoded.Source(), Err: err}
		}
		detected, r, err := p.registry.Detector().Detect(rc)
		if err != nil {
			_ = rc.Close()
			return nil, format, &decoder.ReadError{Source: encoded.Source(), Err: err}
		}
		// Decoders may return without draining the stream.
		defer func() { _ = rc.Close() }()
		format = detected
		encoded.SetFormat(format)
		input = encoded.WithReader(struct {
			io.Reader
			io.Closer
		}{r, rc})
	}

	dec, err := p.registry.DecoderFor(format)
	if err != nil {
		return nil, format, err
	}
	img, err := dec.Decode(ctx, input, input.Size(), fimage.FullQuality, opts)
	return img, format, err
}

// Render creates a drawable for img with the first registered factory that
// supports it.
func (p *Pipeline) Render(img fimage.CloseableImage) (drawable.Drawable, error) {
	factory, err := p.registry.FactoryFor(img)
	if err != nil {
		return nil, err
	}
	return factory.CreateDrawable(img), nil
}

// Load decodes encoded and renders the result. The caller owns the returned
// image and must close it once the drawable is no longer displayed. If
// rendering fails the image is closed and nothing is returned.
func (p *Pipeline) Load(ctx context.Context, encoded *fimage.EncodedImage, opts decoder.Options) (fimage.CloseableImage, drawable.Drawable, error) {
	img, err := p.Decode(ctx, encoded, opts)
	if err != nil {
		return nil, nil, err
	}
	d, err := p.Render(img)
	if err != nil {
		_ = img.Close()
		return nil, nil, fmt.Errorf("fresco: render %s: %w", encoded.Source(), err)
	}
	return img, d, nil
}
