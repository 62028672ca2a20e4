package fresco

import (
	"github.com/gogpu/fresco/clock"
)

// RegistryOption configures a Registry during creation.
//
// Example:
//
//	// Default formats plus the color sample
//	r, err := fresco.NewRegistry(
//	    fresco.WithDefaultFormats(),
//	    fresco.WithPlugins(color.Plugin()),
//	)
type RegistryOption func(*registryOptions)

type registryOptions struct {
	defaults bool
	plugins  []Plugin
}

// WithDefaultFormats registers the built-in decoder and bitmap drawable
// factory for every default format that has a Go decoder.
func WithDefaultFormats() RegistryOption {
	return func(o *registryOptions) {
		o.defaults = true
	}
}

// WithPlugins registers plugins, in order, after the default formats.
func WithPlugins(plugins ...Plugin) RegistryOption {
	return func(o *registryOptions) {
		o.plugins = append(o.plugins, plugins...)
	}
}

// PipelineOption configures a Pipeline during creation.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	clock    clock.MonotonicNanoClock
	observer Observer
}

func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		clock: clock.Get(),
	}
}

// WithClock sets the clock used to measure decode latency. The default is
// clock.Get().
func WithClock(c clock.MonotonicNanoClock) PipelineOption {
	return func(o *pipelineOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithObserver sets an observer notified after every decode.
func WithObserver(obs Observer) PipelineOption {
	return func(o *pipelineOptions) {
		o.observer = obs
	}
}
