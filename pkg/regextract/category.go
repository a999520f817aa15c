package regextract

import "github.com/regextract/regextract-go/internal/catalog"

// Category names a kind of substring the extractor looks for.
type Category string

// Built-in categories, in reporting order.
const (
	CategoryEmails          Category = catalog.Emails
	CategoryURLs            Category = catalog.URLs
	CategoryPhoneNumbers    Category = catalog.PhoneNumbers
	CategoryCreditCards     Category = catalog.CreditCards
	CategoryTimes24Hour     Category = catalog.Times24Hour
	CategoryTimes12Hour     Category = catalog.Times12Hour
	CategoryHTMLTags        Category = catalog.HTMLTags
	CategoryHashtags        Category = catalog.Hashtags
	CategoryCurrencyAmounts Category = catalog.CurrencyAmounts
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Report maps every category an extractor recognizes to its matches.
// Every recognized category is present, with an empty slice when nothing matched.
type Report map[Category][]string

// Total returns the number of matches across all categories.
func (r Report) Total() int {
	n := 0
	for _, m := range r {
		n += len(m)
	}
	return n
}
