// Package pattern loads user-defined extraction categories from YAML files.
//
// A pattern file adds categories on top of the built-in catalog. Each
// category is a regular expression (RE2 syntax, as accepted by the regexp
// package); every non-overlapping whole match is reported.
package pattern

// PatternFile represents the structure of a YAML pattern file.
//
// Example YAML file:
//
//	version: 1
//	patterns:
//	  - name: ipv4_addresses
//	    regex: '\b(?:\d{1,3}\.){3}\d{1,3}\b'
//	  - name: order_ids
//	    regex: '\bORD-\d{6}\b'
//	    exclude: '^ORD-000000$'
type PatternFile struct {
	// Version is the pattern file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Patterns is the list of category definitions.
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern defines one custom category.
type Pattern struct {
	// Name is the category name reported in extraction results.
	// Lowercase letters, digits and underscores, starting with a letter.
	Name string `yaml:"name"`

	// Regex matches occurrences of the category.
	Regex string `yaml:"regex"`

	// Exclude optionally drops matches that it matches.
	Exclude string `yaml:"exclude,omitempty"`

	// Description is free text shown by the categories command.
	Description string `yaml:"description,omitempty"`
}
