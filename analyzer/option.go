package analyzer

import "log/slog"

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(a *Analyzer) {
		a.config = cfg
	}
}

// WithMaxTreeLevels overrides the recursion-tree display cap.
func WithMaxTreeLevels(levels int) Option {
	return func(a *Analyzer) {
		a.config.MaxTreeLevels = levels
	}
}

// WithMaxASTNodes overrides the function-body node cap.
func WithMaxASTNodes(n int) Option {
	return func(a *Analyzer) {
		a.config.MaxASTNodes = n
	}
}

// WithCacheDisabled turns off result memoization; every Analyze call runs
// the full pipeline.
func WithCacheDisabled() Option {
	return func(a *Analyzer) {
		a.config.CacheEnabled = false
	}
}

// WithLogger sets the structured logger used for stage-boundary diagnostics.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}
