// Package regextract pulls structured substrings out of free text:
// emails, URLs, phone numbers, credit-card-like numbers, 24-hour and
// 12-hour times, HTML tags, hashtags and currency amounts.
//
// # Basic Usage
//
// To extract one category:
//
//	emails, err := regextract.Extract(regextract.CategoryEmails, text)
//	if err != nil {
//	    // only possible for an unknown category
//	    log.Fatal(err)
//	}
//
// To extract every category at once:
//
//	report := regextract.ExtractAll(text)
//	for _, c := range regextract.Categories() {
//	    fmt.Printf("%s: %v\n", c, report[c])
//	}
//
// Every result element is the whole matched substring. Results keep the
// order of appearance and include duplicates. A category with no matches
// has an empty, non-nil slice.
//
// An unknown category name yields an [*UnrecognizedDataTypeError], which
// matches [ErrUnrecognizedDataType] under errors.Is.
//
// # Large Files
//
// [ScanFile] reads a file in bounded chunks (1 KiB by default) and reports
// each chunk separately, so the whole file is never held in memory:
//
//	for res, err := range regextract.ScanFile(ctx, "dump.txt") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.Index, res.Report[regextract.CategoryURLs])
//	}
//
// A match that straddles two chunks is not reported.
//
// # Custom Categories
//
// Additional categories can be defined in YAML with the [pattern]
// subpackage and added with [WithPatternFile]:
//
//	pf, err := pattern.Load("patterns.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ex, err := regextract.New(regextract.WithPatternFile(pf))
//
// # Matching Engine
//
// Patterns use the regexp package (RE2), which runs in time linear in the
// input, so no pattern can backtrack catastrophically on hostile text.
package regextract
