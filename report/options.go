// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrNilSpline is returned by Write for a nil spline.
	ErrNilSpline = errors.New("report: nil spline")
	// ErrNilWriter is returned by Write for a nil writer.
	ErrNilWriter = errors.New("report: nil writer")
)

const (
	// DefaultPrecision is the number of decimals printed for every value.
	DefaultPrecision = 6
	// DenseRowLimit is the largest system Write prints as a full matrix.
	DenseRowLimit = 16
)

// Option configures the table renderers.
type Option func(*Options)

// Options holds rendering settings.
type Options struct {
	Precision int
}

// WithPrecision sets the decimals per value; negative values are ignored.
func WithPrecision(p int) Option {
	return func(o *Options) {
		if p >= 0 {
			o.Precision = p
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{Precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
