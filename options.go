package n8nscan

import (
	"time"

	"github.com/rs/zerolog"
)

// analyzeConfig holds the resolved configuration for an analysis run.
type analyzeConfig struct {
	outputDir     string
	rulesPath     string
	glob          string
	timeout       time.Duration
	radarBinary   string
	semgrepBinary string
	logger        zerolog.Logger
}

func applyOpts(opts []Option) *analyzeConfig {
	cfg := &analyzeConfig{logger: zerolog.Nop()}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// Option configures an analysis run.
type Option func(*analyzeConfig)

// WithOutputDir sets the directory for tool artifacts (default: analysis_output).
func WithOutputDir(dir string) Option {
	return func(c *analyzeConfig) {
		c.outputDir = dir
	}
}

// WithRulesPath sets the semgrep rules file path.
func WithRulesPath(path string) Option {
	return func(c *analyzeConfig) {
		c.rulesPath = path
	}
}

// WithGlob sets the file pattern for batch discovery (default: *.json).
func WithGlob(pattern string) Option {
	return func(c *analyzeConfig) {
		c.glob = pattern
	}
}

// WithTimeout bounds each tool invocation (default: 60s).
func WithTimeout(d time.Duration) Option {
	return func(c *analyzeConfig) {
		c.timeout = d
	}
}

// WithRadarBinary overrides the agentic-radar executable.
func WithRadarBinary(bin string) Option {
	return func(c *analyzeConfig) {
		c.radarBinary = bin
	}
}

// WithSemgrepBinary overrides the semgrep executable.
func WithSemgrepBinary(bin string) Option {
	return func(c *analyzeConfig) {
		c.semgrepBinary = bin
	}
}

// WithLogger sets the diagnostics logger (default: no-op).
func WithLogger(log zerolog.Logger) Option {
	return func(c *analyzeConfig) {
		c.logger = log
	}
}
