// Package config loads xrfplot run settings from YAML.
// Values are applied in the order defaults, file, environment; command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-xrf/render"
	"github.com/cwbudde/algo-xrf/xrf"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config contains all xrfplot settings.
type Config struct {
	Tube      TubeConfig      `yaml:"tube"`
	Synthesis SynthesisConfig `yaml:"synthesis"`
	Plot      PlotConfig      `yaml:"plot"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TubeConfig describes the excitation. Weights may be omitted for equal
// weighting.
type TubeConfig struct {
	Energies []float64 `yaml:"energies"`
	Weights  []float64 `yaml:"weights,omitempty"`
}

// SynthesisConfig mirrors the xrf synthesis options.
type SynthesisConfig struct {
	Samples       int     `yaml:"samples"`
	Width         float64 `yaml:"width"`
	MinProminence float64 `yaml:"min_prominence"`

	// Method is "direct" or "convolution".
	Method string `yaml:"method"`

	// Attribution is "union" or "last-source".
	Attribution string `yaml:"attribution"`

	// Workers bounds concurrent synthesis in the Moseley plot; 0 uses
	// GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// PlotConfig controls figure output.
type PlotConfig struct {
	Elements []string `yaml:"elements,omitempty"`

	// Labels is "none", "simple" or "full".
	Labels   string `yaml:"labels"`
	Output   string `yaml:"output,omitempty"`
	CellSize int    `yaml:"cell_size"`
	Width    int    `yaml:"width,omitempty"`
	HideLaw  bool   `yaml:"hide_law"`
}

// LoggingConfig selects the log level: "info" or "debug".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{
		Tube: TubeConfig{Energies: []float64{40}},
		Synthesis: SynthesisConfig{
			Samples:       xrf.DefaultSamples,
			Width:         xrf.DefaultWidth,
			MinProminence: xrf.DefaultMinProminence,
			Method:        xrf.MethodDirect.String(),
			Attribution:   xrf.AttributeUnion.String(),
		},
		Plot: PlotConfig{
			Labels:   render.LabelsFull.String(),
			CellSize: render.DefaultCellSize,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads a YAML file over the defaults without environment
// overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that every setting can be turned into library options.
func (c *Config) Validate() error {
	if len(c.Tube.Energies) == 0 {
		return fmt.Errorf("%w: tube.energies is empty", ErrInvalid)
	}
	if _, err := c.Sources(); err != nil {
		return fmt.Errorf("%w: tube: %w", ErrInvalid, err)
	}
	if c.Synthesis.Samples < 2 {
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrInvalid, c.Synthesis.Samples)
	}
	if c.Synthesis.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %g", ErrInvalid, c.Synthesis.Width)
	}
	if c.Synthesis.MinProminence < 0 {
		return fmt.Errorf("%w: min_prominence must be non-negative, got %g", ErrInvalid, c.Synthesis.MinProminence)
	}
	if c.Synthesis.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalid, c.Synthesis.Workers)
	}
	if _, err := parseMethod(c.Synthesis.Method); err != nil {
		return err
	}
	if _, err := parseAttribution(c.Synthesis.Attribution); err != nil {
		return err
	}
	if _, err := render.ParseLabelMode(c.Plot.Labels); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Plot.CellSize <= 0 || c.Plot.Width < 0 {
		return fmt.Errorf("%w: cell_size %d, width %d", ErrInvalid, c.Plot.CellSize, c.Plot.Width)
	}

	validLevels := map[string]bool{"": true, "info": true, "debug": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: log level %q (valid: info, debug)", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// Sources builds the sorted excitation sources.
func (c *Config) Sources() ([]xrf.Source, error) {
	return xrf.NewSources(c.Tube.Energies, c.Tube.Weights)
}

// SynthOptions converts the synthesis settings. Call Validate first; unknown
// method or attribution names are reported here too.
func (c *Config) SynthOptions() ([]xrf.Option, error) {
	method, err := parseMethod(c.Synthesis.Method)
	if err != nil {
		return nil, err
	}
	attr, err := parseAttribution(c.Synthesis.Attribution)
	if err != nil {
		return nil, err
	}
	return []xrf.Option{
		xrf.WithSamples(c.Synthesis.Samples),
		xrf.WithWidth(c.Synthesis.Width),
		xrf.WithMinProminence(c.Synthesis.MinProminence),
		xrf.WithMethod(method),
		xrf.WithAttribution(attr),
	}, nil
}

// LabelMode parses Plot.Labels.
func (c *Config) LabelMode() (render.LabelMode, error) {
	return render.ParseLabelMode(c.Plot.Labels)
}

// Debug reports whether debug logging is requested.
func (c *Config) Debug() bool { return c.Logging.Level == "debug" }

func parseMethod(s string) (xrf.Method, error) {
	for _, m := range []xrf.Method{xrf.MethodDirect, xrf.MethodConvolution} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: method %q (valid: direct, convolution)", ErrInvalid, s)
}

func parseAttribution(s string) (xrf.Attribution, error) {
	for _, a := range []xrf.Attribution{xrf.AttributeUnion, xrf.AttributeLastSource} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: attribution %q (valid: union, last-source)", ErrInvalid, s)
}

// applyEnvOverrides applies XRFPLOT_* environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("XRFPLOT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("XRFPLOT_METHOD"); v != "" {
		cfg.Synthesis.Method = v
	}

	if v := os.Getenv("XRFPLOT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Synthesis.Workers = n
		}
	}

	if v := os.Getenv("XRFPLOT_TUBE_KEV"); v != "" {
		var energies []float64
		for _, field := range strings.Split(v, ",") {
			e, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return
			}
			energies = append(energies, e)
		}
		cfg.Tube.Energies = energies
		cfg.Tube.Weights = nil
	}
}
