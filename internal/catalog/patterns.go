package catalog

import "regexp"

// Compiled regex patterns for each built-in category.
// All groups are non-capturing so FindAllString yields whole matches.
var (
	// Matches: "user@example.com", "first.last+tag@mail.co.uk"
	emailPattern = regexp.MustCompile(
		`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
	)

	// Matches: "https://www.example.com", "http://example.org/path?q=1"
	// The path part must start with '/', '?' or '#' and never ends on
	// sentence punctuation, so "see http://a.io/p, then" yields "http://a.io/p".
	urlPattern = regexp.MustCompile(
		`https?://(?:www\.)?[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:[/?#](?:\S*[^\s.,;:!?)])?)?`,
	)

	// Matches: "(123) 456-7890", "123-456-7890", "123.456.7890", "1234567890"
	phonePattern = regexp.MustCompile(
		`(?:\(\d{3}\)|\b\d{3})[-.\s]?\d{3}[-.\s]?\d{4}\b`,
	)

	// Matches: "1234 5678 9012 3456", "1234-5678-9012-3456", "1234567890123456"
	creditCardPattern = regexp.MustCompile(
		`\b(?:\d{4}[- ]?){3}\d{4}\b`,
	)

	// Matches: "14:30", "09:05", "9:05"
	// A trailing meridiem is consumed so the match can be rejected by
	// meridiemSuffix; "2:30 PM" belongs to times_12_hour only.
	time24Pattern = regexp.MustCompile(
		`\b(?:[01]?[0-9]|2[0-3]):[0-5][0-9](?:\s?(?i:[ap]m))?\b`,
	)
	meridiemSuffix = regexp.MustCompile(`(?i)[ap]m$`)

	// Matches: "2:30 PM", "11:15am", "12:00 Pm"
	time12Pattern = regexp.MustCompile(
		`\b(?:1[0-2]|0?[1-9]):[0-5][0-9]\s?(?i:[ap]m)\b`,
	)

	// Matches: "<p>", "</div>", `<a href="x">`
	// Shortest span to the next '>'; a '>' inside an attribute value ends the tag early.
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

	// Matches: "#golang", "#day_2"
	hashtagPattern = regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`)

	// Matches: "$5", "$19.99", "$1,234.56", "$12345"
	currencyPattern = regexp.MustCompile(
		`\$(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?`,
	)
)

// builtins is the fixed catalog in reporting order.
var builtins = []Definition{
	{Name: Emails, Description: "local-part@domain.tld addresses", Regex: emailPattern},
	{Name: URLs, Description: "http and https URLs", Regex: urlPattern},
	{Name: PhoneNumbers, Description: "US-style 10-digit phone numbers", Regex: phonePattern},
	{Name: CreditCards, Description: "four groups of four digits", Regex: creditCardPattern},
	{Name: Times24Hour, Description: "HH:MM times, 00-23 hours", Regex: time24Pattern, Exclude: meridiemSuffix},
	{Name: Times12Hour, Description: "H:MM AM/PM times", Regex: time12Pattern},
	{Name: HTMLTags, Description: "text between < and the next >", Regex: htmlTagPattern},
	{Name: Hashtags, Description: "# followed by letters, digits or underscores", Regex: hashtagPattern},
	{Name: CurrencyAmounts, Description: "dollar amounts with optional cents", Regex: currencyPattern},
}
