// Package htmldoc extracts measurement rows from spreadsheet clipboard
// content in HTML flavor.
//
// Copying cells out of Excel, LibreOffice, or Google Sheets puts an HTML
// table on the clipboard alongside the plain-text form. This package pulls
// the first table out of that markup and flattens it to field rows for the
// measure package.
package htmldoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoTable is returned when the markup contains no table element.
var ErrNoTable = errors.New("no table found in HTML content")

// Rows parses HTML from r and returns the cell text of the first table,
// one slice per tr, in document order.
func Rows(r io.Reader) ([][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, ErrNoTable
	}

	var rows [][]string
	walkRows(table, &rows)
	if len(rows) == 0 {
		return nil, ErrNoTable
	}
	return rows, nil
}

// RowsFromFile parses an HTML file from disk.
func RowsFromFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return Rows(f)
}

// walkRows collects td/th cell text for every tr under n.
func walkRows(n *html.Node, rows *[][]string) {
	if n.Type == html.ElementNode && n.Data == "tr" {
		var fields []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			fields = appendCells(c, fields)
		}
		*rows = append(*rows, fields)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkRows(c, rows)
	}
}

// appendCells appends the text of any td/th elements at or under n.
func appendCells(n *html.Node, fields []string) []string {
	if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
		return append(fields, strings.TrimSpace(textContent(n)))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fields = appendCells(c, fields)
	}
	return fields
}

// findElement returns the first element with the given tag name in a
// depth-first walk of the tree rooted at n.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent returns the concatenated text under n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
