package polyroots

import "errors"

// ErrZeroPoly - the zero polynomial vanishes everywhere; "its roots" is not
// a meaningful question.
var ErrZeroPoly = errors.New("polyroots: zero polynomial")

// ErrInvalidInterval - the scan interval is empty, inverted or non-finite.
var ErrInvalidInterval = errors.New("polyroots: invalid scan interval")

// DefaultSubdivisions is the grid resolution used when none is configured.
const DefaultSubdivisions = 256

// Options configures the scan.
type Options struct {
	// Subdivisions is the number of uniform grid cells over the scan
	// interval. More cells resolve more closely-spaced roots at a linear
	// cost in evaluations.
	Subdivisions int
}

// Option mutates Options.
type Option func(*Options)

// WithSubdivisions overrides the grid resolution. Values < 1 are ignored.
func WithSubdivisions(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Subdivisions = n
		}
	}
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Subdivisions: DefaultSubdivisions}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
