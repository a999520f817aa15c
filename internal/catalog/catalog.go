// Package catalog holds the built-in extraction patterns.
package catalog

import "regexp"

// Built-in category names.
const (
	Emails          = "emails"
	URLs            = "urls"
	PhoneNumbers    = "phone_numbers"
	CreditCards     = "credit_cards"
	Times24Hour     = "times_24_hour"
	Times12Hour     = "times_12_hour"
	HTMLTags        = "html_tags"
	Hashtags        = "hashtags"
	CurrencyAmounts = "currency_amounts"
)

// Definition pairs a category name with its matching rule.
type Definition struct {
	Name        string
	Description string
	Regex       *regexp.Regexp

	// Exclude drops any candidate match it matches. Nil keeps every match.
	Exclude *regexp.Regexp
}

// FindAll returns every non-overlapping whole match of d in text,
// left to right. The result is never nil.
func (d Definition) FindAll(text string) []string {
	found := d.Regex.FindAllString(text, -1)
	if d.Exclude == nil {
		if found == nil {
			return []string{}
		}
		return found
	}

	kept := make([]string, 0, len(found))
	for _, m := range found {
		if d.Exclude.MatchString(m) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// Definitions returns a copy of the built-in catalog in reporting order.
func Definitions() []Definition {
	defs := make([]Definition, len(builtins))
	copy(defs, builtins)
	return defs
}

// Names returns the built-in category names in reporting order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, d := range builtins {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the built-in definition for name.
func Lookup(name string) (Definition, bool) {
	for _, d := range builtins {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
