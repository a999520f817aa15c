package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// Compiled is a pattern with its expressions compiled.
type Compiled struct {
	Name        string
	Description string
	Regex       *regexp.Regexp
	Exclude     *regexp.Regexp // nil when the pattern has no exclude
}

// Compile validates pf and compiles every expression in file order.
func Compile(pf *PatternFile) ([]Compiled, error) {
	if pf == nil {
		return nil, errors.New("pattern file is nil")
	}
	if err := pf.Validate(); err != nil {
		return nil, err
	}

	out := make([]Compiled, 0, len(pf.Patterns))
	for i, p := range pf.Patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, &PatternError{
				Index:   i,
				Name:    p.Name,
				Field:   "regex",
				Message: fmt.Sprintf("invalid regular expression: %v", err),
				Cause:   err,
			}
		}

		var exclude *regexp.Regexp
		if p.Exclude != "" {
			exclude, err = regexp.Compile(p.Exclude)
			if err != nil {
				return nil, &PatternError{
					Index:   i,
					Name:    p.Name,
					Field:   "exclude",
					Message: fmt.Sprintf("invalid regular expression: %v", err),
					Cause:   err,
				}
			}
		}

		out = append(out, Compiled{
			Name:        p.Name,
			Description: p.Description,
			Regex:       re,
			Exclude:     exclude,
		})
	}
	return out, nil
}

// CompileFile loads the pattern file at path and compiles it.
func CompileFile(path string) ([]Compiled, error) {
	pf, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Compile(pf)
}
