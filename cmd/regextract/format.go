package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/regextract/regextract-go/pkg/regextract"
)

// validFormats lists all valid output formats.
var validFormats = map[string]bool{
	"text":  true,
	"jsonl": true,
	"yaml":  true,
}

// record is one unit of output: the report for a literal text, a file
// chunk or a followed line.
type record struct {
	Path   string // empty for literal text
	Chunk  int    // chunk index, -1 when not a chunk
	Offset int64
	Line   int // followed line number, 0 when not a line
	Report regextract.Report
}

func textRecord(r regextract.Report) record {
	return record{Chunk: -1, Report: r}
}

func chunkRecord(res regextract.ChunkResult) record {
	return record{Path: res.Path, Chunk: res.Index, Offset: res.Offset, Report: res.Report}
}

func lineRecord(res regextract.LineResult) record {
	return record{Path: res.Path, Chunk: -1, Line: res.Line, Report: res.Report}
}

// writeRecord writes rec in the given format, listing only the
// categories in order.
func writeRecord(out io.Writer, format string, rec record, order []regextract.Category) error {
	switch format {
	case "text":
		return writeText(out, rec, order)
	case "jsonl":
		return writeJSON(out, rec, order)
	case "yaml":
		return writeYAML(out, rec, order)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText writes one line per category: the capitalized category name
// followed by its quoted matches.
func writeText(out io.Writer, rec record, order []regextract.Category) error {
	if h := header(rec); h != "" {
		if _, err := fmt.Fprintf(out, "==> %s <==\n", h); err != nil {
			return err
		}
	}
	for _, c := range order {
		if _, err := fmt.Fprintf(out, "%s: %s\n", capitalize(c.String()), quoteList(rec.Report[c])); err != nil {
			return err
		}
	}
	return nil
}

func header(rec record) string {
	switch {
	case rec.Path == "":
		return ""
	case rec.Line > 0:
		return fmt.Sprintf("%s:%d", rec.Path, rec.Line)
	case rec.Chunk >= 0:
		return fmt.Sprintf("%s chunk %d (offset %d)", rec.Path, rec.Chunk, rec.Offset)
	default:
		return rec.Path
	}
}

// capitalize upper-cases the first letter and lower-cases the rest,
// so "phone_numbers" becomes "Phone_numbers".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func quoteList(matches []string) string {
	quoted := make([]string, len(matches))
	for i, m := range matches {
		quoted[i] = strconv.Quote(m)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// jsonRecord is the JSON Lines shape of a record.
type jsonRecord struct {
	Path    string              `json:"path,omitempty"`
	Chunk   *int                `json:"chunk,omitempty"`
	Offset  *int64              `json:"offset,omitempty"`
	Line    int                 `json:"line,omitempty"`
	Matches map[string][]string `json:"matches"`
}

func writeJSON(out io.Writer, rec record, order []regextract.Category) error {
	jr := jsonRecord{
		Path:    rec.Path,
		Line:    rec.Line,
		Matches: make(map[string][]string, len(order)),
	}
	if rec.Chunk >= 0 {
		jr.Chunk = &rec.Chunk
		jr.Offset = &rec.Offset
	}
	for _, c := range order {
		m := rec.Report[c]
		if m == nil {
			m = []string{}
		}
		jr.Matches[c.String()] = m
	}

	data, err := json.Marshal(jr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// writeYAML writes rec as one YAML document. A mapping node is built by
// hand so categories keep catalog order.
func writeYAML(out io.Writer, rec record, order []regextract.Category) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, scalar(key), value)
	}

	if rec.Path != "" {
		add("path", scalar(rec.Path))
	}
	if rec.Chunk >= 0 {
		add("chunk", intScalar(int64(rec.Chunk)))
		add("offset", intScalar(rec.Offset))
	}
	if rec.Line > 0 {
		add("line", intScalar(int64(rec.Line)))
	}

	matches := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range order {
		list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, m := range rec.Report[c] {
			list.Content = append(list.Content, scalar(m))
		}
		matches.Content = append(matches.Content, scalar(c.String()), list)
	}
	add("matches", matches)

	if _, err := io.WriteString(out, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intScalar(n int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n, 10)}
}
