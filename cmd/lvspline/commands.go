// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspline/config"
	"github.com/katalvlaran/lvspline/metrics"
	"github.com/katalvlaran/lvspline/plot"
	"github.com/katalvlaran/lvspline/report"
	"github.com/katalvlaran/lvspline/spline"
)

// app holds flag values and the state resolved before a subcommand runs.
type app struct {
	configPath      string
	start, end      float64
	segments        int
	expr            string
	gnuplotExpr     string
	logLevel        string
	metricsTextfile string
	precision       int
	at              []float64
	output          string
	exact           bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "lvspline",
		Short:        "Natural cubic spline interpolation over a Thomas tridiagonal solver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (missing file means defaults)")
	pf.Float64Var(&a.start, "start", spline.DefaultStart, "left end of the sampling domain")
	pf.Float64Var(&a.end, "end", spline.DefaultEnd, "right end of the sampling domain")
	pf.IntVar(&a.segments, "segments", spline.DefaultSegments, "number of cubic segments")
	pf.StringVar(&a.expr, "expr", "", "target as a Lisp expression in x, e.g. '(* 0.9 (cos x))'")
	pf.StringVar(&a.gnuplotExpr, "gnuplot-expr", "", "target in gnuplot syntax for the plot script")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics of the build to this file")

	root.AddCommand(a.newRunCmd(), a.newGnuplotCmd())

	return root
}

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the spline and print nodes, system, coefficients and segment definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sp, err := a.build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err = report.Write(out, sp, report.WithPrecision(a.precision)); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Spline definitions:")
			for _, d := range plot.SegmentDefinitions(sp) {
				fmt.Fprintln(out, d)
			}

			return a.evaluate(out, sp)
		},
	}
	cmd.Flags().IntVar(&a.precision, "precision", report.DefaultPrecision, "decimals printed per value")
	cmd.Flags().Float64SliceVar(&a.at, "at", nil, "also evaluate the spline at these abscissas")

	return cmd
}

func (a *app) newGnuplotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gnuplot",
		Short: "Write a gnuplot script plotting the target and every segment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sp, err := a.build()
			if err != nil {
				return err
			}
			if a.output == "" || a.output == "-" {
				return plot.WriteScript(cmd.OutOrStdout(), sp, a.cfg.PlotOptions()...)
			}
			f, err := os.Create(a.output)
			if err != nil {
				return err
			}
			if err = plot.WriteScript(f, sp, a.cfg.PlotOptions()...); err != nil {
				_ = f.Close()
				return err
			}
			a.log.Info("gnuplot script written", "path", a.output)

			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "script path; empty or - writes to stdout")
	cmd.Flags().BoolVar(&a.exact, "exact", false, "add a panel plotting the target alone")

	return cmd
}

// resolve loads the config, applies explicitly set flags and sets up logging.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Spline.Start = a.start
	}
	if flags.Changed("end") {
		cfg.Spline.End = a.end
	}
	if flags.Changed("segments") {
		cfg.Spline.Segments = a.segments
	}
	if flags.Changed("expr") {
		cfg.Target.Expression = a.expr
	}
	if flags.Changed("gnuplot-expr") {
		cfg.Target.Gnuplot = a.gnuplotExpr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(a.logLevel))
	}
	if flags.Changed("exact") {
		cfg.Plot.Exact = a.exact
	}
	if flags.Changed("precision") && a.precision < 0 {
		return fmt.Errorf("--precision must be >= 0 (got %d)", a.precision)
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	return nil
}

// build runs spline.Build with the resolved config, logging and metrics.
func (a *app) build() (*spline.Spline, error) {
	fn, err := a.cfg.TargetFunc()
	if err != nil {
		return nil, err
	}
	rec := metrics.NewRecorder()
	opts := append(a.cfg.SplineOptions(), spline.WithLogger(a.log), spline.WithObserver(rec))

	sp, err := spline.Build(fn, opts...)
	if a.metricsTextfile != "" {
		if werr := rec.WriteTextfile(a.metricsTextfile); werr != nil {
			a.log.Warn("metrics textfile not written", "path", a.metricsTextfile, "err", werr)
		}
	}
	if err != nil {
		a.log.Error("spline build failed", "status", metrics.Status(err), "err", err)
		return nil, err
	}
	a.log.Debug("spline built",
		"start", a.cfg.Spline.Start, "end", a.cfg.Spline.End, "segments", a.cfg.Spline.Segments)

	return sp, nil
}

// evaluate prints S(x), the target and their difference for every --at value.
func (a *app) evaluate(w io.Writer, sp *spline.Spline) error {
	if len(a.at) == 0 {
		return nil
	}
	fn, err := a.cfg.TargetFunc()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, x := range a.at {
		s, err := sp.Eval(x)
		if err != nil {
			return err
		}
		f := fn(x)
		fmt.Fprintf(w, "S(%.*f) = %.*f  f = %.*f  diff = %.3e\n",
			a.precision, x, a.precision, s, a.precision, f, s-f)
	}

	return nil
}
