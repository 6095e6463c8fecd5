// SPDX-License-Identifier: MIT

package plot

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilSpline is returned by Script and WriteScript for a nil spline.
	ErrNilSpline = errors.New("plot: nil spline")
	// ErrNilWriter is returned by WriteScript for a nil writer.
	ErrNilWriter = errors.New("plot: nil writer")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("plot: invalid option supplied")
)

// Defaults for a script.
const (
	DefaultTitle       = "Spline interpolation"
	DefaultTargetTitle = "Target function"
	DefaultExactTitle  = "Exact solution"
	DefaultYMin        = -1.0
	DefaultYMax        = 1.0
)

// Option configures WriteScript. Invalid values are recorded and surfaced
// as ErrOptionViolation.
type Option func(*Options)

// Options holds script settings.
type Options struct {
	Title       string
	TargetExpr  string // gnuplot expression in x; empty omits the target curve
	TargetTitle string
	YMin, YMax  float64

	// ExactTitle, when set, adds a panel above the spline that plots the
	// target alone under this title. Requires TargetExpr.
	ExactTitle string

	err error
}

// DefaultOptions returns the settings of the reference plot.
func DefaultOptions() Options {
	return Options{
		Title:       DefaultTitle,
		TargetTitle: DefaultTargetTitle,
		YMin:        DefaultYMin,
		YMax:        DefaultYMax,
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithTargetExpression plots t(x) = expr next to the segments.
func WithTargetExpression(expr string) Option {
	return func(o *Options) { o.TargetExpr = expr }
}

// WithTargetTitle sets the legend entry of the target curve.
func WithTargetTitle(title string) Option {
	return func(o *Options) { o.TargetTitle = title }
}

// WithExactPlot splits the script into two stacked panels: the target
// alone under title (DefaultExactTitle when empty), then the spline.
// Script fails with ErrOptionViolation unless a target expression is set.
func WithExactPlot(title string) Option {
	return func(o *Options) {
		if title == "" {
			title = DefaultExactTitle
		}
		o.ExactTitle = title
	}
}

// WithYRange sets the vertical range; lo < hi, both finite.
func WithYRange(lo, hi float64) Option {
	return func(o *Options) {
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
			o.err = fmt.Errorf("%w: y range [%g, %g]", ErrOptionViolation, lo, hi)
			return
		}
		o.YMin, o.YMax = lo, hi
	}
}
