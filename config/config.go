// SPDX-License-Identifier: MIT
// Package: cellgate/config
//
// config.go: pipeline settings read from YAML or TOML files.
//
// Contract:
//   • Decode and Load start from Default, overwrite only the keys present in
//     the document and then Validate; they never return an invalid Config.
//   • A key set explicitly to zero is kept and rejected by Validate.
//   • Unknown keys are rejected in both formats.
//   • Validate reports every bad field at once; each error wraps
//     ErrInvalidConfig.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellgate/gate"
)

// Sentinel errors.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Format selects the decoder.
type Format int

const (
	YAML Format = iota + 1
	TOML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the file extension.
// Errors: ErrUnknownFormat.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Log formats accepted by LogFormat.
const (
	LogText = "text"
	LogJSON = "json"
)

// Config holds pipeline and logging settings.
type Config struct {
	BaseTolerance   float64
	MaxSnapDistance float64
	Epsilon         float64
	Weights         []float64 // four measure weights
	Workers         int       // SubmitBatch limit, 0 = GOMAXPROCS
	LogLevel        string
	LogFormat       string
}

// Default returns the configuration matching the gate defaults.
func Default() Config {
	return Config{
		BaseTolerance:   gate.DefaultBaseTolerance,
		MaxSnapDistance: gate.DefaultMaxSnapDistance,
		Epsilon:         gate.DefaultEpsilon,
		Weights:         slices.Clone(gate.DefaultWeights[:]),
		LogLevel:        "info",
		LogFormat:       LogText,
	}
}

// document is the on-disk shape. Absent keys stay nil so an explicit zero
// reaches Validate instead of being replaced by a default.
type document struct {
	BaseTolerance   *float64  `yaml:"base_tolerance" toml:"base_tolerance"`
	MaxSnapDistance *float64  `yaml:"max_snap_distance" toml:"max_snap_distance"`
	Epsilon         *float64  `yaml:"epsilon" toml:"epsilon"`
	Weights         []float64 `yaml:"weights" toml:"weights"`
	Workers         *int      `yaml:"workers" toml:"workers"`
	LogLevel        *string   `yaml:"log_level" toml:"log_level"`
	LogFormat       *string   `yaml:"log_format" toml:"log_format"`
}

// merge overlays the keys present in d onto Default().
func (d document) merge() Config {
	c := Default()
	setIf(&c.BaseTolerance, d.BaseTolerance)
	setIf(&c.MaxSnapDistance, d.MaxSnapDistance)
	setIf(&c.Epsilon, d.Epsilon)
	setIf(&c.Workers, d.Workers)
	setIf(&c.LogLevel, d.LogLevel)
	setIf(&c.LogFormat, d.LogFormat)
	if d.Weights != nil {
		c.Weights = d.Weights
	}

	return c
}

func setIf[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Load reads and validates the file at path; the extension selects the format.
func Load(path string) (Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	c, err := Decode(fh, f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Decode reads one document in format f, applies defaults and validates it.
// An empty document yields Default(); keys present with zero values are
// validated as given.
func Decode(r io.Reader, f Format) (Config, error) {
	var d document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	case TOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&d); err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("config: %s: %w", f, ErrUnknownFormat)
	}
	c := d.merge()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

func positiveFinite(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// Validate checks every field and joins all problems into one error.
func (c Config) Validate() error {
	var errs []error
	if !positiveFinite(c.BaseTolerance) {
		errs = append(errs, invalid("base_tolerance", "%v is not finite and > 0", c.BaseTolerance))
	}
	if !positiveFinite(c.MaxSnapDistance) {
		errs = append(errs, invalid("max_snap_distance", "%v is not finite and > 0", c.MaxSnapDistance))
	}
	if !positiveFinite(c.Epsilon) {
		errs = append(errs, invalid("epsilon", "%v is not finite and > 0", c.Epsilon))
	}
	if len(c.Weights) != 4 {
		errs = append(errs, invalid("weights", "got %d values, want 4", len(c.Weights)))
	} else if !gate.ValidWeights([4]float64(c.Weights)) {
		errs = append(errs, invalid("weights", "%v must be finite, >= 0 and not all zero", c.Weights))
	}
	if c.Workers < 0 {
		errs = append(errs, invalid("workers", "%d is negative", c.Workers))
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, invalid("log_level", "%v", err))
	}
	if c.LogFormat != LogText && c.LogFormat != LogJSON {
		errs = append(errs, invalid("log_format", "%q is not %q or %q", c.LogFormat, LogText, LogJSON))
	}

	return errors.Join(errs...)
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.LogLevel))

	return lvl, err
}

// Options converts c into pipeline options.
// Errors: the Validate error when c is invalid.
func (c Config) Options() ([]gate.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return []gate.Option{
		gate.WithBaseTolerance(c.BaseTolerance),
		gate.WithMaxSnapDistance(c.MaxSnapDistance),
		gate.WithEpsilon(c.Epsilon),
		gate.WithWeights([4]float64(c.Weights)),
	}, nil
}

// Logger returns a slog logger writing to w at the configured level and
// format. Invalid settings fall back to info level text output.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
