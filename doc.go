// Package fresco loads encoded images into drawables.
//
// # Overview
//
// An image format is handled by a Plugin: a format checker that recognizes
// the leading bytes of the encoded data, a decoder that turns the data into
// a closeable image, and a drawable factory that renders the decoded image.
// Plugins are kept in a Registry keyed by image format. The default formats
// (JPEG, PNG, GIF, BMP, TIFF and static WebP) are available through
// WithDefaultFormats.
//
// A Pipeline ties the pieces together:
//
//	r, err := fresco.NewRegistry(fresco.WithDefaultFormats())
//	if err != nil {
//	    return err
//	}
//	if err := color.Register(r); err != nil {
//	    return err
//	}
//
//	p := fresco.NewPipeline(r)
//	img, d, err := p.Load(ctx, image.NewEncodedImage(data), decoder.Options{})
//	if err != nil {
//	    return err
//	}
//	defer img.Close()
//	d.SetBounds(dst.Bounds())
//	d.Draw(dst)
//
// # Errors
//
// Decoding never fails silently. Errors wrap decoder.ErrFormatMismatch,
// decoder.ErrMalformed or decoder.ErrUnsupportedFormat, or are a
// *decoder.ReadError for I/O failures; decoder.Classify reduces any of them
// to a decoder.Outcome.
//
// # Sub-packages
//
//   - clock: monotonic clock used for latency measurement
//   - imageformat: image formats, format checkers and detection
//   - image: encoded and decoded (closeable) images
//   - decoder: decoder contract, errors and the default decoder
//   - drawable: drawables and drawable factories
//   - samples/color: a sample plugin for the "<color>#RRGGBB<" format
//   - vito: the drawable contract used by image views, and a controller
//     that fetches images into it
package fresco

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
