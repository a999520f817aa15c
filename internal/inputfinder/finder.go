// Package inputfinder lists the files to scan under a directory.
package inputfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/regextract/regextract-go/internal/safefile"
)

// DefaultGlob selects every file in the directory.
const DefaultGlob = "*"

// Sentinel errors.
var (
	ErrNotDir   = errors.New("not a directory")
	ErrNoInputs = errors.New("no input files found")
)

// Find returns the regular files in dir whose base name matches glob,
// sorted by name. Subdirectories are not descended into; symlinks and
// special files are skipped. An empty glob means DefaultGlob.
//
// Returns ErrNotDir if dir is not a directory and ErrNoInputs if nothing matches.
func Find(dir, glob string) ([]string, error) {
	if glob == "" {
		glob = DefaultGlob
	}
	if _, err := filepath.Match(glob, ""); err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", glob, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("globbing input files: %w", err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if safefile.IsRegular(m) {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, ErrNoInputs
	}

	sort.Strings(files)
	return files, nil
}
