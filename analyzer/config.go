package analyzer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config bounds the analysis pipeline. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// MaxTreeLevels caps the number of materialized recursion-tree levels.
	// Level formulas beyond the cap stay symbolic; the cap only truncates
	// the displayed arena.
	MaxTreeLevels int `json:"maxTreeLevels" yaml:"maxTreeLevels"`

	// MaxASTNodes rejects pathologically large function bodies as malformed
	// input instead of attempting to analyze them.
	MaxASTNodes int `json:"maxASTNodes" yaml:"maxASTNodes"`

	// CacheEnabled toggles fingerprint-keyed memoization of results.
	CacheEnabled bool `json:"cacheEnabled" yaml:"cacheEnabled"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxTreeLevels: 6,
		MaxASTNodes:   50000,
		CacheEnabled:  true,
	}
}

// ParseConfig decodes a YAML document over the defaults, so absent keys keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("analyzer: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.MaxTreeLevels < 1 {
		return fmt.Errorf("%w: maxTreeLevels must be >= 1, got %d", ErrInvalidConfig, c.MaxTreeLevels)
	}
	if c.MaxASTNodes < 1 {
		return fmt.Errorf("%w: maxASTNodes must be >= 1, got %d", ErrInvalidConfig, c.MaxASTNodes)
	}
	return nil
}
