package multroot

import "errors"

// ErrZeroPoly - the zero polynomial has no root structure to recover.
var ErrZeroPoly = errors.New("multroot: zero polynomial")

// ErrIllConditioned - the recovered multiplicity structure cannot reproduce
// the input coefficients to tolerance.
var ErrIllConditioned = errors.New("multroot: ill-conditioned root structure")

// Root is one distinct real root with its multiplicity.
type Root struct {
	Value        float64
	Multiplicity int
}

// Options configures Solve.
type Options struct {
	// RefineIters bounds the Gauss–Newton polish.
	RefineIters int

	// Subdivisions is forwarded to the per-level root scan.
	Subdivisions int
}

// Option mutates Options.
type Option func(*Options)

// WithRefineIters overrides the polish budget. Values < 0 are ignored;
// 0 disables the polish.
func WithRefineIters(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.RefineIters = n
		}
	}
}

// WithSubdivisions overrides the scan resolution at every level.
func WithSubdivisions(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Subdivisions = n
		}
	}
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		RefineIters:  8,
		Subdivisions: 0, // scanner default
	}
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
