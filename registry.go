package fresco

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/fresco/decoder"
	"github.com/gogpu/fresco/drawable"
	fimage "github.com/gogpu/fresco/image"
	"github.com/gogpu/fresco/imageformat"
	"github.com/hashicorp/go-multierror"
)

// Registry errors.
var (
	// ErrDuplicateFormat is returned when a format is registered twice.
	ErrDuplicateFormat = errors.New("fresco: format already registered")

	// ErrInvalidPlugin is returned for a plugin missing required parts.
	ErrInvalidPlugin = errors.New("fresco: invalid plugin")

	// ErrNoFactory is returned when no registered factory supports an image.
	ErrNoFactory = errors.New("fresco: no drawable factory for image")

	// ErrImageClosed is returned when rendering a closed image.
	ErrImageClosed = errors.New("fresco: image is closed")
)

// Plugin is the set of capabilities that make up support for one format.
//
// Checker may be nil for default formats, which imageformat.DefaultChecker
// already recognizes. Factory may be nil when images of the format are
// rendered by another plugin's factory.
type Plugin struct {
	Format  imageformat.ImageFormat
	Checker imageformat.FormatChecker
	Decoder decoder.ImageDecoder
	Factory drawable.Factory
}

// validate reports every problem with p at once.
func (p Plugin) validate() error {
	var result *multierror.Error
	if p.Format.IsUnknown() {
		result = multierror.Append(result, fmt.Errorf("%w: unknown format", ErrInvalidPlugin))
	}
	if p.Decoder == nil {
		result = multierror.Append(result, fmt.Errorf("%w: %s: nil decoder", ErrInvalidPlugin, p.Format))
	}
	if p.Checker == nil && !imageformat.IsDefault(p.Format) {
		result = multierror.Append(result, fmt.Errorf("%w: %s: nil checker for a custom format", ErrInvalidPlugin, p.Format))
	}
	return result.ErrorOrNil()
}

// Registry maps image formats to plugins. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[imageformat.ImageFormat]Plugin
	order    []imageformat.ImageFormat
	detector *imageformat.Detector
}

// NewRegistry returns a registry configured by opts. All registration
// failures are reported together.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		plugins:  make(map[imageformat.ImageFormat]Plugin),
		detector: imageformat.NewDetector(),
	}

	var result *multierror.Error
	if o.defaults {
		dec := decoder.NewDefault()
		factory := drawable.NewBitmapFactory(nil)
		for _, f := range dec.Formats() {
			if err := r.Register(Plugin{Format: f, Decoder: dec, Factory: factory}); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	for _, p := range o.plugins {
		if err := r.Register(p); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds p. It fails if p is invalid or its format is already
// registered.
func (r *Registry) Register(p Plugin) error {
	if err := p.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[p.Format]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFormat, p.Format)
	}
	r.plugins[p.Format] = p
	r.order = append(r.order, p.Format)
	r.detector = r.buildDetector()

	Logger().Debug("fresco: registered format", "format", p.Format.Name(), "extension", p.Format.FileExtension())
	return nil
}

// buildDetector must be called with r.mu held.
func (r *Registry) buildDetector() *imageformat.Detector {
	var checkers []imageformat.FormatChecker
	for _, f := range r.order {
		if c := r.plugins[f].Checker; c != nil {
			checkers = append(checkers, c)
		}
	}
	return imageformat.NewDetector(checkers...)
}

// Lookup returns the plugin registered for f.
func (r *Registry) Lookup(f imageformat.ImageFormat) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[f]
	return p, ok
}

// Formats returns the registered formats in registration order.
func (r *Registry) Formats() []imageformat.ImageFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]imageformat.ImageFormat(nil), r.order...)
}

// Detector returns a detector running the default checker followed by every
// registered checker, in registration order. The returned detector is not
// updated by later registrations.
func (r *Registry) Detector() *imageformat.Detector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.detector
}

// DecoderFor returns the decoder registered for f. The error wraps
// decoder.ErrUnsupportedFormat when there is none.
func (r *Registry) DecoderFor(f imageformat.ImageFormat) (decoder.ImageDecoder, error) {
	p, ok := r.Lookup(f)
	if !ok {
		return nil, fmt.Errorf("fresco: %w: %s", decoder.ErrUnsupportedFormat, f)
	}
	return p.Decoder, nil
}

// FactoryFor returns the first registered factory, in registration order,
// that supports img.
func (r *Registry) FactoryFor(img fimage.CloseableImage) (drawable.Factory, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrNoFactory)
	}
	if img.IsClosed() {
		return nil, ErrImageClosed
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.order {
		if factory := r.plugins[f].Factory; factory != nil && factory.SupportsImageType(img) {
			return factory, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrNoFactory, img)
}
