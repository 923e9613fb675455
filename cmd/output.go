package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/PuerkitoBio/goquery"

	"github.com/s0up4200/scripture/bible"
)

const (
	formatAuto  = "auto"
	formatJSON  = "json"
	formatTable = "table"
)

// column is one table column; path is a dotted lookup into a record
type column struct {
	header string
	path   string
}

// printer renders API responses as indented JSON or as tables
type printer struct {
	writer io.Writer
	table  bool
}

// newPrinter resolves format against w: auto prints tables to a terminal
// and JSON everywhere else
func newPrinter(w io.Writer, format string) (*printer, error) {
	p := &printer{writer: w}

	switch strings.ToLower(format) {
	case "", formatAuto:
		if f, ok := w.(*os.File); ok {
			p.table = isTerminal(f)
		}
	case formatJSON:
	case formatTable:
		p.table = true
	default:
		return nil, fmt.Errorf("invalid output format: %s (must be auto, json or table)", format)
	}

	return p, nil
}

// List prints the records of a list response. In JSON mode the response
// is printed with its data replaced by records, keeping meta.
func (p *printer) List(resp bible.Response, records []map[string]any, columns []column) error {
	if !p.table {
		body := bible.Response{"data": records}
		if meta := resp.Meta(); meta != nil {
			body["meta"] = meta
		}
		return p.JSON(body)
	}

	if len(records) == 0 {
		fmt.Fprintln(p.writer, "No results.")
		return nil
	}

	tw := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range records {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = truncate(cell(lookupPath(r, c.path)), 60)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// Object prints a single-resource response: its scalar fields as a
// two-column table followed by the scripture content as plain text
func (p *printer) Object(resp bible.Response) error {
	if !p.table {
		return p.JSON(resp)
	}

	data, ok := resp.Data().(map[string]any)
	if !ok {
		return p.JSON(resp)
	}

	keys := make([]string, 0, len(data))
	for k, v := range data {
		if k == "content" || !isScalar(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, cell(data[k]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if content, ok := data["content"]; ok {
		fmt.Fprintln(p.writer)
		fmt.Fprintln(p.writer, strings.TrimSpace(plainText(content)))
	}
	return nil
}

// JSON marshals and prints v
func (p *printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	fmt.Fprintf(p.writer, "%s\n", data)
	return nil
}

// lookupPath walks a dotted path such as "language.name"
func lookupPath(record map[string]any, path string) any {
	var cur any = record
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, json.Number:
		return true
	}
	return false
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.Join(strings.Fields(t), " ")
	case float64:
		return fmt.Sprintf("%g", t)
	}
	return fmt.Sprint(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// plainText flattens content into readable text. html and text content
// arrive as strings; json content is a tree of nodes whose leaves carry
// a "text" member.
func plainText(content any) string {
	var b strings.Builder
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case string:
			if strings.Contains(t, "</") {
				b.WriteString(htmlText(t))
				return
			}
			b.WriteString(t)
		case []any:
			for _, item := range t {
				walk(item)
			}
		case map[string]any:
			if text, ok := t["text"].(string); ok {
				b.WriteString(text)
			}
			walk(t["items"])
			if t["name"] == "para" {
				b.WriteString("\n")
			}
		}
	}
	walk(content)
	return b.String()
}

// htmlText extracts the text of html content, one line per paragraph
func htmlText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	paragraphs := doc.Find("p")
	if paragraphs.Length() == 0 {
		return doc.Text()
	}

	var b strings.Builder
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		b.WriteString(strings.TrimSpace(p.Text()))
		b.WriteString("\n")
	})
	return b.String()
}
