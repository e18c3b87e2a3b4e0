package xrf

import "go.uber.org/zap"

// Method selects how broadened lines are evaluated on the sample axis.
type Method int

const (
	// MethodDirect evaluates every Gaussian at every sample.
	MethodDirect Method = iota
	// MethodConvolution deposits line amplitudes on the grid and convolves
	// with a sampled Gaussian via FFT.
	MethodConvolution
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodConvolution:
		return "convolution"
	default:
		return "unknown"
	}
}

// Attribution selects which line table peaks are matched against.
type Attribution int

const (
	// AttributeUnion matches against the lines of every source, de-duplicated
	// by label in first-seen order.
	AttributeUnion Attribution = iota
	// AttributeLastSource matches against the lines of the highest-energy
	// source only.
	AttributeLastSource
)

// String returns the attribution mode name.
func (a Attribution) String() string {
	switch a {
	case AttributeUnion:
		return "union"
	case AttributeLastSource:
		return "last-source"
	default:
		return "unknown"
	}
}

// Default synthesis settings.
const (
	DefaultSamples       = 2000
	DefaultWidth         = 0.01
	DefaultMinProminence = 0.001
)

// Config holds synthesis and detection settings.
type Config struct {
	Samples       int
	Width         float64 // Gaussian width parameter in keV^2
	MinProminence float64
	Method        Method
	Attribution   Attribution
	Logger        *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Samples:       DefaultSamples,
		Width:         DefaultWidth,
		MinProminence: DefaultMinProminence,
		Method:        MethodDirect,
		Attribution:   AttributeUnion,
		Logger:        zap.NewNop(),
	}
}

// WithSamples sets the number of axis samples. Values below 2 are ignored.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n >= 2 {
			cfg.Samples = n
		}
	}
}

// WithWidth sets the shared Gaussian width parameter.
func WithWidth(width float64) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.Width = width
		}
	}
}

// WithMinProminence sets the peak prominence threshold.
func WithMinProminence(p float64) Option {
	return func(cfg *Config) {
		if p >= 0 {
			cfg.MinProminence = p
		}
	}
}

// WithMethod selects the line evaluation strategy.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		if m == MethodDirect || m == MethodConvolution {
			cfg.Method = m
		}
	}
}

// WithAttribution selects the line table used for peak attribution.
func WithAttribution(a Attribution) Option {
	return func(cfg *Config) {
		if a == AttributeUnion || a == AttributeLastSource {
			cfg.Attribution = a
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
