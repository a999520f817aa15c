package regextract

import (
	"fmt"
	"log/slog"

	"github.com/regextract/regextract-go/internal/chunk"
	"github.com/regextract/regextract-go/pkg/regextract/pattern"
)

// Option configures an Extractor using the functional options pattern.
type Option func(*config)

// config holds internal configuration for an Extractor.
type config struct {
	logger    *slog.Logger
	files     []*pattern.PatternFile
	chunkSize int
}

func defaultConfig() *config {
	return &config{
		chunkSize: chunk.DefaultSize,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (c *config) validate() error {
	if c.chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.chunkSize)
	}
	return nil
}

// WithLogger sets the logger for diagnostic output.
// If logger is nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPatternFile adds the categories defined in pf after the built-in
// ones. May be given more than once; files are added in order.
// A nil pf has no effect.
func WithPatternFile(pf *pattern.PatternFile) Option {
	return func(c *config) {
		if pf != nil {
			c.files = append(c.files, pf)
		}
	}
}

// WithChunkSize sets the maximum chunk size in bytes used by ScanFile
// and ScanDir. Default: 1024.
func WithChunkSize(size int) Option {
	return func(c *config) {
		c.chunkSize = size
	}
}
