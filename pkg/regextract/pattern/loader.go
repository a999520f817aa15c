package pattern

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/regextract/regextract-go/internal/safefile"
)

const (
	// MaxPatternFileSize is the maximum size of a pattern file (1 MiB).
	MaxPatternFileSize = 1 * 1024 * 1024

	// MaxPatternLength is the maximum length of a single regex or exclude expression.
	MaxPatternLength = 512

	// MaxPatternCount is the maximum number of patterns in one file.
	MaxPatternCount = 1000

	// SupportedVersion is the only accepted pattern file version.
	SupportedVersion = 1
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// sanitizePathError drops the path from an *os.PathError so error
// messages do not echo file system locations back to the user.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads, parses and validates the pattern file at path.
// Only regular files are accepted; symlinks, FIFOs and devices are rejected.
func Load(path string) (*PatternFile, error) {
	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", sanitizePathError(err))
	}
	defer f.Close()

	if info.Size() == 0 {
		return nil, errors.New("pattern file is empty")
	}
	if info.Size() > MaxPatternFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", info.Size(), MaxPatternFileSize)
	}

	// One extra byte detects a file that grew after Stat.
	data, err := io.ReadAll(io.LimitReader(f, MaxPatternFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", sanitizePathError(err))
	}

	return LoadBytes(data)
}

// LoadBytes parses and validates a pattern file held in memory.
func LoadBytes(data []byte) (*PatternFile, error) {
	if len(data) == 0 {
		return nil, errors.New("pattern file is empty")
	}
	if len(data) > MaxPatternFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", len(data), MaxPatternFileSize)
	}

	var pf PatternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return &pf, nil
}

// Validate checks the version, pattern count, required fields, name
// syntax, name uniqueness and expression lengths. It does not compile
// the expressions; Compile does that.
func (pf *PatternFile) Validate() error {
	if pf.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", pf.Version, SupportedVersion),
		}
	}

	if len(pf.Patterns) == 0 {
		return &ValidationError{
			Field:   "patterns",
			Message: "at least one pattern is required",
		}
	}
	if len(pf.Patterns) > MaxPatternCount {
		return &ValidationError{
			Field:   "patterns",
			Message: fmt.Sprintf("too many patterns (%d), maximum allowed is %d", len(pf.Patterns), MaxPatternCount),
		}
	}

	seen := make(map[string]int, len(pf.Patterns))
	for i, p := range pf.Patterns {
		if p.Name == "" {
			return &PatternError{Index: i, Field: "name", Message: "name is required"}
		}
		if !namePattern.MatchString(p.Name) {
			return &PatternError{
				Index:   i,
				Name:    p.Name,
				Field:   "name",
				Message: "name must be lowercase letters, digits or underscores and start with a letter",
			}
		}
		if p.Regex == "" {
			return &PatternError{Index: i, Name: p.Name, Field: "regex", Message: "regex is required"}
		}

		if prev, exists := seen[p.Name]; exists {
			return &PatternError{
				Index:   i,
				Name:    p.Name,
				Field:   "name",
				Message: fmt.Sprintf("duplicate name (previously defined at pattern[%d])", prev),
			}
		}
		seen[p.Name] = i

		if len(p.Regex) > MaxPatternLength {
			return &PatternError{
				Index:   i,
				Name:    p.Name,
				Field:   "regex",
				Message: fmt.Sprintf("pattern too long: %d bytes (max %d)", len(p.Regex), MaxPatternLength),
			}
		}
		if len(p.Exclude) > MaxPatternLength {
			return &PatternError{
				Index:   i,
				Name:    p.Name,
				Field:   "exclude",
				Message: fmt.Sprintf("pattern too long: %d bytes (max %d)", len(p.Exclude), MaxPatternLength),
			}
		}
	}

	return nil
}
