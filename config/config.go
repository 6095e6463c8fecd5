// SPDX-License-Identifier: MIT

// Package config loads the settings of a spline run: sampling domain,
// segment count, target expression, plot layout and log level.
//
// Priority is env > file > defaults. Missing files are not an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvspline/plot"
	"github.com/katalvlaran/lvspline/spline"
	"github.com/katalvlaran/lvspline/target"
)

// ErrInvalidConfig wraps every file, environment and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvStart    = "LVSPLINE_START"
	EnvEnd      = "LVSPLINE_END"
	EnvSegments = "LVSPLINE_SEGMENTS"
	EnvExpr     = "LVSPLINE_EXPR"
	EnvGnuplot  = "LVSPLINE_GNUPLOT"
	EnvBoundary = "LVSPLINE_BOUNDARY"
	EnvLogLevel = "LVSPLINE_LOG_LEVEL"
)

// Config is the top-level settings struct.
type Config struct {
	Spline   SplineConfig `yaml:"spline"`
	Target   TargetConfig `yaml:"target"`
	Plot     PlotConfig   `yaml:"plot"`
	LogLevel string       `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// SplineConfig mirrors spline.Options.
type SplineConfig struct {
	Start    float64 `yaml:"start" validate:"finite,ltfield=End"`
	End      float64 `yaml:"end" validate:"finite"`
	Segments int     `yaml:"segments" validate:"gte=2,lte=100000"` // spline.MinSegments, spline.MaxSegments
	Boundary string  `yaml:"boundary" validate:"oneof=natural"`
}

// TargetConfig selects the interpolated function.
type TargetConfig struct {
	// Expression is a Lisp expression in x; empty selects the reference cosine.
	Expression string `yaml:"expression"`

	// Gnuplot is the same function for the plot script. Empty means the
	// reference cosine when Expression is empty, and no target curve otherwise.
	Gnuplot string `yaml:"gnuplot"`
}

// PlotConfig holds the gnuplot script layout.
type PlotConfig struct {
	Title string  `yaml:"title" validate:"required"`
	YMin  float64 `yaml:"y_min" validate:"finite,ltfield=YMax"`
	YMax  float64 `yaml:"y_max" validate:"finite"`

	// Exact adds a panel plotting the target alone. Needs a gnuplot target.
	Exact bool `yaml:"exact"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("finite", validateFinite); err != nil {
		panic(err)
	}
}

// validateFinite rejects NaN and ±Inf floats.
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Default returns the reference demonstration settings.
func Default() Config {
	return Config{
		Spline: SplineConfig{
			Start:    spline.DefaultStart,
			End:      spline.DefaultEnd,
			Segments: spline.DefaultSegments,
			Boundary: spline.DefaultBoundary.String(),
		},
		Plot: PlotConfig{
			Title: plot.DefaultTitle,
			YMin:  plot.DefaultYMin,
			YMax:  plot.DefaultYMax,
		},
		LogLevel: "info",
	}
}

// Load returns defaults overlaid with the YAML file at path (if any) and
// then with the environment, and validates the result.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// readFile decodes path over c. Unknown keys are rejected.
func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return nil
}

// ApplyEnv overrides fields from LVSPLINE_* variables. Unset or empty
// variables are skipped; malformed numbers are reported.
func (c *Config) ApplyEnv() error {
	var err error
	if v := os.Getenv(EnvStart); v != "" {
		if c.Spline.Start, err = strconv.ParseFloat(v, 64); err != nil {
			return envError(EnvStart, err)
		}
	}
	if v := os.Getenv(EnvEnd); v != "" {
		if c.Spline.End, err = strconv.ParseFloat(v, 64); err != nil {
			return envError(EnvEnd, err)
		}
	}
	if v := os.Getenv(EnvSegments); v != "" {
		if c.Spline.Segments, err = strconv.Atoi(v); err != nil {
			return envError(EnvSegments, err)
		}
	}
	if v := os.Getenv(EnvExpr); v != "" {
		c.Target.Expression = v
	}
	if v := os.Getenv(EnvGnuplot); v != "" {
		c.Target.Gnuplot = v
	}
	if v := os.Getenv(EnvBoundary); v != "" {
		c.Spline.Boundary = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return nil
}

func envError(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
}

// Validate checks struct tags and that a non-empty expression compiles.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Target.Expression != "" {
		if _, err := target.Compile(c.Target.Expression); err != nil {
			return fmt.Errorf("%w: target.expression: %w", ErrInvalidConfig, err)
		}
	}
	if c.Plot.Exact && c.GnuplotTarget() == "" {
		return fmt.Errorf("%w: plot.exact needs target.gnuplot", ErrInvalidConfig)
	}

	return nil
}

// SplineOptions converts the spline section to Build options.
func (c Config) SplineOptions() []spline.Option {
	opts := []spline.Option{
		spline.WithDomain(c.Spline.Start, c.Spline.End),
		spline.WithSegments(c.Spline.Segments),
	}
	// An unknown name leaves the option out; Validate reports it.
	if b, err := spline.ParseBoundary(c.Spline.Boundary); err == nil {
		opts = append(opts, spline.WithBoundary(b))
	}

	return opts
}

// TargetFunc returns the function to interpolate.
func (c Config) TargetFunc() (spline.TargetFunc, error) {
	if c.Target.Expression == "" {
		return target.Reference(), nil
	}
	expr, err := target.Compile(c.Target.Expression)
	if err != nil {
		return nil, fmt.Errorf("%w: target.expression: %w", ErrInvalidConfig, err)
	}

	return expr.Func(), nil
}

// GnuplotTarget returns the gnuplot form of the target, or "" for none.
func (c Config) GnuplotTarget() string {
	switch {
	case c.Target.Gnuplot != "":
		return c.Target.Gnuplot
	case c.Target.Expression == "":
		return target.ReferenceGnuplot
	default:
		return ""
	}
}

// PlotOptions converts the plot section to script options.
func (c Config) PlotOptions() []plot.Option {
	opts := []plot.Option{
		plot.WithTitle(c.Plot.Title),
		plot.WithYRange(c.Plot.YMin, c.Plot.YMax),
	}
	if g := c.GnuplotTarget(); g != "" {
		opts = append(opts, plot.WithTargetExpression(g))
	}
	if c.Plot.Exact {
		opts = append(opts, plot.WithExactPlot(""))
	}

	return opts
}

// SlogLevel maps LogLevel to a slog level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
