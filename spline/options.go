// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Reference demonstration defaults.
const (
	DefaultStart    = 3.0
	DefaultEnd      = 6.0
	DefaultSegments = 5
	DefaultBoundary = BoundaryNatural

	// MinSegments is the smallest count that leaves an interior equation.
	MinSegments = 2

	// MaxSegments caps WithSegments. Build is O(m) in time and memory, so
	// the cap bounds the work of one call rather than a dense allocation.
	MaxSegments = 100000
)

// Option configures Build via functional arguments.
// If an Option is invalid (e.g. an empty domain), it is recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds the parameters of one Build.
type Options struct {
	// Start and End bound the sampling domain; Start < End, both finite.
	Start, End float64

	// Segments is the number of cubic pieces (node count − 1), ≥ MinSegments.
	Segments int

	// Boundary selects end conditions; only BoundaryNatural is supported.
	Boundary Boundary

	// Logger receives one Debug record per stage.
	Logger *slog.Logger

	// Observer receives one Event per stage; nil disables events.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference demonstration:
//   - domain [3, 6]
//   - 5 segments (6 nodes)
//   - natural boundary
//   - a logger that discards everything
//   - no observer.
func DefaultOptions() Options {
	return Options{
		Start:    DefaultStart,
		End:      DefaultEnd,
		Segments: DefaultSegments,
		Boundary: DefaultBoundary,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDomain sets the sampling interval [start, end].
//
//	both finite and start < end: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithDomain(start, end float64) Option {
	return func(o *Options) {
		if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) || !(start < end) {
			o.err = fmt.Errorf("%w: domain must be finite with start < end (got [%g, %g])", ErrOptionViolation, start, end)
			return
		}
		o.Start, o.End = start, end
	}
}

// WithSegments sets the number of spline pieces, MinSegments ≤ n ≤ MaxSegments.
func WithSegments(n int) Option {
	return func(o *Options) {
		if n < MinSegments || n > MaxSegments {
			o.err = fmt.Errorf("%w: segments must be in [%d, %d] (got %d)", ErrOptionViolation, MinSegments, MaxSegments, n)
			return
		}
		o.Segments = n
	}
}

// WithBoundary selects end conditions. Anything but BoundaryNatural is
// recorded as ErrUnsupportedBoundary.
func WithBoundary(b Boundary) Option {
	return func(o *Options) {
		if b != BoundaryNatural {
			o.err = fmt.Errorf("%w: %s", ErrUnsupportedBoundary, b)
			return
		}
		o.Boundary = b
	}
}

// WithLogger attaches a structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a stage observer. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}
