package main

import (
	"fmt"
	"log/slog"

	"github.com/regextract/regextract-go/pkg/regextract"
	"github.com/regextract/regextract-go/pkg/regextract/pattern"
)

// buildExtractor builds an Extractor with the built-in categories plus
// the categories defined in the given pattern files.
func buildExtractor(patternFiles []string, chunkSize int, logger *slog.Logger) (*regextract.Extractor, error) {
	opts := []regextract.Option{
		regextract.WithLogger(logger),
		regextract.WithChunkSize(chunkSize),
	}

	for i, path := range patternFiles {
		pf, err := pattern.Load(path)
		if err != nil {
			// Error from pattern package is already sanitized (no path)
			return nil, fmt.Errorf("pattern file %d: %w", i+1, err)
		}
		logger.Debug("loaded pattern file", "index", i+1, "patterns", len(pf.Patterns))
		opts = append(opts, regextract.WithPatternFile(pf))
	}

	return regextract.New(opts...)
}

// selectCategories resolves the --types list against the categories ex
// knows about. An empty list selects every category in catalog order.
func selectCategories(ex *regextract.Extractor, types []string) ([]regextract.Category, error) {
	all := ex.Categories()
	if len(types) == 0 {
		return all, nil
	}

	known := make(map[regextract.Category]bool, len(all))
	for _, c := range all {
		known[c] = true
	}

	want := make(map[regextract.Category]bool, len(types))
	for _, t := range types {
		c := regextract.Category(t)
		if !known[c] {
			return nil, &regextract.UnrecognizedDataTypeError{Name: t}
		}
		want[c] = true
	}

	selected := make([]regextract.Category, 0, len(want))
	for _, c := range all {
		if want[c] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
