// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvspline/spline"
)

// segmentFormat is the conditional definition of one segment.
const segmentFormat = "S%d(x) = (x > %f && x < %f) ? %f + (%f)*(x - %f) + (%f/2)*(x - %f)**2 + (%f/6)*(x - %f)**3 : NaN"

// SegmentDefinition returns the gnuplot definition of seg.
func SegmentDefinition(seg spline.Segment) string {
	return fmt.Sprintf(segmentFormat,
		seg.Index, seg.Left, seg.Right,
		seg.A, seg.B, seg.Right, seg.C, seg.Right, seg.D, seg.Right)
}

// SegmentDefinitions returns one definition per segment, in order.
// A nil spline has none.
func SegmentDefinitions(sp *spline.Spline) []string {
	if sp == nil {
		return nil
	}
	segs := sp.Segments()
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = SegmentDefinition(s)
	}

	return out
}

// Script returns the full gnuplot script for sp.
func Script(sp *spline.Spline, opts ...Option) (string, error) {
	if sp == nil {
		return "", ErrNilSpline
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return "", o.err
	}
	if o.ExactTitle != "" && o.TargetExpr == "" {
		return "", fmt.Errorf("%w: exact plot needs a target expression", ErrOptionViolation)
	}

	start, end := sp.Domain()
	var b strings.Builder
	b.WriteString("set xlabel \"X\"\n")
	b.WriteString("set ylabel \"Y\"\n")
	b.WriteString("set key top right\n")
	fmt.Fprintf(&b, "set title '%s'\n", quote(o.Title))
	b.WriteString("set grid xtics ytics mxtics mytics\n")
	fmt.Fprintf(&b, "set xrange[%f:%f]\n", start, end)
	fmt.Fprintf(&b, "set yrange[%f:%f]\n", o.YMin, o.YMax)

	defs := SegmentDefinitions(sp)
	for _, d := range defs {
		b.WriteString(d)
		b.WriteByte('\n')
	}

	curves := make([]string, 0, len(defs)+1)
	if o.TargetExpr != "" {
		fmt.Fprintf(&b, "t(x) = %s\n", o.TargetExpr)
		curves = append(curves, fmt.Sprintf("t(x) title '%s' lw 2 lc rgb 'blue'", quote(o.TargetTitle)))
	}
	for i := range defs {
		curves = append(curves, fmt.Sprintf("S%d(x) title 'S%d' lw 3", i+1, i+1))
	}
	if o.ExactTitle != "" {
		b.WriteString("set multiplot layout 2,1\n")
		fmt.Fprintf(&b, "set title '%s'\n", quote(o.ExactTitle))
		fmt.Fprintf(&b, "plot t(x) with lines title '%s'\n", quote(o.TargetTitle))
		fmt.Fprintf(&b, "set title '%s'\n", quote(o.Title))
	}
	b.WriteString("plot ")
	b.WriteString(strings.Join(curves, ", \\\n     "))
	b.WriteByte('\n')
	if o.ExactTitle != "" {
		b.WriteString("unset multiplot\n")
	}

	return b.String(), nil
}

// WriteScript writes Script(sp, opts...) to w.
func WriteScript(w io.Writer, sp *spline.Spline, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	s, err := Script(sp, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// quote escapes single quotes for a gnuplot single-quoted string.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
