package decoder

import (
	"context"
	"errors"
)

// Decode errors.
var (
	// ErrFormatMismatch is returned when the data is not in the format the
	// decoder handles.
	ErrFormatMismatch = errors.New("decoder: format mismatch")

	// ErrMalformed is returned when the data is in the right format but its
	// payload cannot be decoded.
	ErrMalformed = errors.New("decoder: malformed image data")

	// ErrUnsupportedFormat is returned when no decoder handles the format.
	ErrUnsupportedFormat = errors.New("decoder: unsupported format")
)

// ReadError reports an I/O failure while draining the encoded stream.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return "decoder: read " + e.Source + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Outcome classifies the result of a decode.
type Outcome uint8

const (
	// OutcomeDecoded means an image was produced.
	OutcomeDecoded Outcome = iota
	// OutcomeMismatch means the data is not in the decoder's format.
	OutcomeMismatch
	// OutcomeMalformed means the data matched but could not be decoded.
	OutcomeMalformed
	// OutcomeReadFailure means the encoded stream could not be read.
	OutcomeReadFailure
	// OutcomeUnsupported means no decoder handles the format.
	OutcomeUnsupported
	// OutcomeCanceled means the context was canceled or timed out.
	OutcomeCanceled
	// OutcomeUnknown is any other error.
	OutcomeUnknown
)

// String returns the lowercase outcome name, suitable as a metric label.
func (o Outcome) String() string {
	switch o {
	case OutcomeDecoded:
		return "decoded"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeMalformed:
		return "malformed"
	case OutcomeReadFailure:
		return "read_failure"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Classify maps the error returned by a decode to its Outcome.
func Classify(err error) Outcome {
	var readErr *ReadError
	switch {
	case err == nil:
		return OutcomeDecoded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case errors.As(err, &readErr):
		return OutcomeReadFailure
	case errors.Is(err, ErrFormatMismatch):
		return OutcomeMismatch
	case errors.Is(err, ErrMalformed):
		return OutcomeMalformed
	case errors.Is(err, ErrUnsupportedFormat):
		return OutcomeUnsupported
	default:
		return OutcomeUnknown
	}
}
