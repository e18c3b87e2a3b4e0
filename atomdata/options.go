package atomdata

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

// Option configures [Open].
type Option func(*config)

// WithLogger sets the logger used while loading. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
