// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/katalvlaran/lvspline/spline"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// newTable returns a bordered table with the package styles.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// NodeTable lists i, x[i], f[i] and the spacing h[i] (blank for node 0).
func NodeTable(nodes []spline.Node, opts ...Option) string {
	o := gatherOptions(opts)
	t := newTable("i", "x[i]", "f[i]", "h[i]")
	for _, n := range nodes {
		h := ""
		if n.HasSpacing() {
			h = o.num(n.H)
		}
		t.Row(strconv.Itoa(n.Index), o.num(n.X), o.num(n.F), h)
	}

	return t.String()
}

// SystemTable prints the augmented matrix [A | rhs].
// Returns matrix.ErrNilMatrix for a nil matrix and matrix.ErrDimensionMismatch
// when rhs does not have one entry per row.
func SystemTable(a matrix.Matrix, rhs []float64, opts ...Option) (string, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return "", err
	}
	if err := matrix.ValidateVecLen(rhs, a.Rows()); err != nil {
		return "", err
	}
	o := gatherOptions(opts)

	cols := a.Cols()
	headers := make([]string, 0, cols+2)
	headers = append(headers, "row")
	for j := 0; j < cols; j++ {
		headers = append(headers, "c"+strconv.Itoa(j))
	}
	headers = append(headers, "rhs")
	t := newTable(headers...)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < a.Rows(); i++ {
		row := make([]string, 0, cols+2)
		row = append(row, strconv.Itoa(i))
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return "", err
			}
			row = append(row, o.num(v))
		}
		row = append(row, o.num(rhs[i]))
		t.Row(row...)
	}

	return t.String(), nil
}

// BandTable prints the system one row per equation as its three band
// entries and right-hand side. Entries outside the matrix print blank.
func BandTable(b spline.Bands, opts ...Option) string {
	o := gatherOptions(opts)
	t := newTable("row", "sub", "diag", "sup", "rhs")
	n := b.Len()
	for i := 0; i < n; i++ {
		sub, sup := "", ""
		if i > 0 {
			sub = o.num(b.Sub[i])
		}
		if i < n-1 {
			sup = o.num(b.Sup[i])
		}
		t.Row(strconv.Itoa(i), sub, o.num(b.Diag[i]), sup, o.num(b.RHS[i]))
	}

	return t.String()
}

// SecondDerivativeTable lists the solved c[i].
func SecondDerivativeTable(second []float64, opts ...Option) string {
	o := gatherOptions(opts)
	t := newTable("i", "c[i]")
	for i, c := range second {
		t.Row(strconv.Itoa(i), o.num(c))
	}

	return t.String()
}

// CoefficientTable lists each segment's interval and a, b, c, d.
func CoefficientTable(segs []spline.Segment, opts ...Option) string {
	o := gatherOptions(opts)
	t := newTable("i", "interval", "a[i]", "b[i]", "c[i]", "d[i]")
	for _, s := range segs {
		t.Row(
			strconv.Itoa(s.Index),
			fmt.Sprintf("(%s, %s)", o.num(s.Left), o.num(s.Right)),
			o.num(s.A), o.num(s.B), o.num(s.C), o.num(s.D),
		)
	}

	return t.String()
}

// Write renders all four tables of sp to w, each under a heading.
// Systems larger than DenseRowLimit are printed as a BandTable.
func Write(w io.Writer, sp *spline.Spline, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	if sp == nil {
		return ErrNilSpline
	}
	system, err := systemSection(sp, opts)
	if err != nil {
		return err
	}

	start, end := sp.Domain()
	o := gatherOptions(opts)
	sections := []struct{ title, body string }{
		{fmt.Sprintf("Nodes on [%s, %s]", o.num(start), o.num(end)), NodeTable(sp.Nodes(), opts...)},
		{"Continuity system", system},
		{"Second derivatives (" + sp.Boundary().String() + ")", SecondDerivativeTable(sp.SecondDerivatives(), opts...)},
		{"Segment coefficients", CoefficientTable(sp.Segments(), opts...)},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(titleStyle.Render(s.title))
		b.WriteByte('\n')
		b.WriteString(s.body)
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())

	return err
}

func systemSection(sp *spline.Spline, opts []Option) (string, error) {
	b := sp.Bands()
	if b.Len() > DenseRowLimit {
		return BandTable(b, opts...), nil
	}
	a, err := b.Dense()
	if err != nil {
		return "", err
	}

	return SystemTable(a, b.RHS, opts...)
}

func (o Options) num(v float64) string {
	return strconv.FormatFloat(v, 'f', o.Precision, 64)
}
