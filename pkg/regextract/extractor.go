package regextract

import (
	"io"
	"log/slog"

	"github.com/regextract/regextract-go/internal/catalog"
	"github.com/regextract/regextract-go/pkg/regextract/pattern"
)

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// defaultExtractor serves the package-level functions. It holds only the
// built-in catalog and cannot fail to build.
var defaultExtractor = &Extractor{
	defs:      catalog.Definitions(),
	index:     indexOf(catalog.Definitions()),
	builtin:   len(catalog.Names()),
	chunkSize: defaultConfig().chunkSize,
	log:       discardLogger,
}

// Extractor applies a fixed set of category patterns to text.
// The set is decided by New and never changes afterwards, so an
// Extractor is safe for concurrent use by multiple goroutines.
type Extractor struct {
	defs      []catalog.Definition
	index     map[string]int
	builtin   int // defs[:builtin] are the built-in categories
	chunkSize int
	log       *slog.Logger
}

// CategoryInfo describes one category of an Extractor.
type CategoryInfo struct {
	Name        Category
	Description string
	Pattern     string
	Builtin     bool
}

// New creates an Extractor with the built-in categories plus any added
// with WithPatternFile. It returns an error if a pattern file fails to
// compile or defines a category name that already exists.
func New(opts ...Option) (*Extractor, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	defs := catalog.Definitions()
	index := indexOf(defs)
	for _, pf := range cfg.files {
		compiled, err := pattern.Compile(pf)
		if err != nil {
			return nil, err
		}
		for _, c := range compiled {
			if _, exists := index[c.Name]; exists {
				return nil, &DuplicateCategoryError{Name: c.Name}
			}
			index[c.Name] = len(defs)
			defs = append(defs, catalog.Definition{
				Name:        c.Name,
				Description: c.Description,
				Regex:       c.Regex,
				Exclude:     c.Exclude,
			})
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = discardLogger
	}

	return &Extractor{
		defs:      defs,
		index:     index,
		builtin:   len(catalog.Names()),
		chunkSize: cfg.chunkSize,
		log:       logger,
	}, nil
}

func indexOf(defs []catalog.Definition) map[string]int {
	index := make(map[string]int, len(defs))
	for i, d := range defs {
		index[d.Name] = i
	}
	return index
}

// Categories returns the recognized categories in reporting order:
// built-ins first, then custom categories in the order they were added.
func (e *Extractor) Categories() []Category {
	cats := make([]Category, len(e.defs))
	for i, d := range e.defs {
		cats[i] = Category(d.Name)
	}
	return cats
}

// Describe returns metadata for every recognized category in reporting order.
func (e *Extractor) Describe() []CategoryInfo {
	infos := make([]CategoryInfo, len(e.defs))
	for i, d := range e.defs {
		infos[i] = CategoryInfo{
			Name:        Category(d.Name),
			Description: d.Description,
			Pattern:     d.Regex.String(),
			Builtin:     i < e.builtin,
		}
	}
	return infos
}

// Extract returns every non-overlapping match of category c in text, in
// order of appearance, duplicates included. Each element is the whole
// matched substring. The result is empty, not nil, when nothing matches.
//
// Extract returns an *UnrecognizedDataTypeError if c is not recognized.
func (e *Extractor) Extract(c Category, text string) ([]string, error) {
	i, ok := e.index[string(c)]
	if !ok {
		e.log.Warn("unrecognized data type requested", "data_type", string(c))
		return nil, &UnrecognizedDataTypeError{Name: string(c)}
	}
	e.log.Debug("scanning category", "data_type", string(c), "text_len", len(text))
	return e.defs[i].FindAll(text), nil
}

// ExtractAll runs every recognized category over text. The report has
// an entry for each category, even when its match list is empty.
func (e *Extractor) ExtractAll(text string) Report {
	report := make(Report, len(e.defs))
	for _, d := range e.defs {
		e.log.Debug("scanning category", "data_type", d.Name, "text_len", len(text))
		report[Category(d.Name)] = d.FindAll(text)
	}
	return report
}

// Extract runs a built-in category over text.
// See (*Extractor).Extract.
func Extract(c Category, text string) ([]string, error) {
	return defaultExtractor.Extract(c, text)
}

// ExtractAll runs every built-in category over text.
// See (*Extractor).ExtractAll.
func ExtractAll(text string) Report {
	return defaultExtractor.ExtractAll(text)
}

// Categories returns the built-in categories in reporting order.
func Categories() []Category {
	return defaultExtractor.Categories()
}
