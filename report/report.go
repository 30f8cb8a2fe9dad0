// Package report assembles the structural layout of a slab inspection
// report: header block, metadata grid, the spanning measurement table with
// its totals row, and the signature region.
//
// The output of [Build] is a renderer-independent [Document]. A renderer
// (pdfout, or anything else honoring the same structure) draws it without
// re-deciding any layout: row order, column order, spans, and bold cells
// are all fixed here.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ruvello/slabsheet/assets"
	"github.com/ruvello/slabsheet/measure"
)

// Metadata holds the operator-supplied report fields. All strings pass
// through to the document verbatim; nothing is validated beyond presence
// of measurable slabs at build time.
type Metadata struct {
	Material      string
	InvoiceNo     string
	Date          time.Time
	Thickness     string
	ContainerNo   string
	Mine          string
	AllowanceText string
}

// Alignment is horizontal cell alignment.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// Cell is one table cell. A ColSpan or RowSpan greater than one merges the
// cell across neighbors; the covered positions still appear in the row with
// Covered set so every row holds exactly one entry per table column.
type Cell struct {
	Text    string
	ColSpan int
	RowSpan int
	Covered bool
	Bold    bool
	Align   Alignment
}

// cell returns a plain single-span cell.
func cell(text string) Cell {
	return Cell{Text: text, ColSpan: 1, RowSpan: 1}
}

// boldCell returns a bold single-span cell.
func boldCell(text string) Cell {
	return Cell{Text: text, ColSpan: 1, RowSpan: 1, Bold: true}
}

// covered returns a placeholder for a position hidden under a span.
func covered() Cell {
	return Cell{Covered: true}
}

// Table is the measurement table. HeaderRows repeat at the top of every
// page when the table breaks across pages. Footer is the totals row, drawn
// once after the last data row in a distinct style.
type Table struct {
	ColWidths  []float64
	HeaderRows [][]Cell
	Rows       [][]Cell
	Footer     []Cell
}

// ColCount returns the number of table columns.
func (t *Table) ColCount() int {
	return len(t.ColWidths)
}

// InfoCell is one labeled cell of the metadata grid.
type InfoCell struct {
	Label string
	Value string
}

// Header is the branded top region of the report.
type Header struct {
	Logo    *assets.Image // nil when no logo was supplied
	Company string
	Contact string
	Title   string
}

// Signature is the closing region: an inspector line and an authorized
// signatory line for the company, optionally with a signature image above
// the signatory rule.
type Signature struct {
	Image          *assets.Image // nil when no signature scan was supplied
	InspectorLabel string
	AuthorityLabel string
	Company        string
}

// Document is the fully assembled report structure.
type Document struct {
	Theme     Theme
	Header    Header
	Info      [][]InfoCell
	Table     Table
	Signature Signature
	Totals    measure.Totals
}

// measurementColWidths are the relative column widths of the measurement
// table: sequence, slab id, then L/H/area for each measurement group.
var measurementColWidths = []float64{35, 75, 50, 50, 65, 50, 50, 65}

// Build assembles a report document from metadata and a record set. The
// set is filtered to measurable slabs first; if nothing survives, Build
// returns measure.ErrNoRecords and no document is produced. Records render
// in the order the set carries them, and the sequence column numbers that
// display order.
func Build(meta Metadata, records measure.RecordSet, theme Theme) (*Document, error) {
	filtered := records.Filter()
	if len(filtered) == 0 {
		return nil, measure.ErrNoRecords
	}
	totals := filtered.Totals()

	doc := &Document{
		Theme: theme,
		Header: Header{
			Company: theme.CompanyName,
			Contact: theme.AddressLine,
			Title:   fmt.Sprintf("INSPECTION REPORT OF %s", strings.ToUpper(meta.Material)),
		},
		Info:  infoGrid(meta, totals),
		Table: measurementTable(filtered, totals),
		Signature: Signature{
			InspectorLabel: "Inspected By:",
			AuthorityLabel: "Authorized Signatory:",
			Company:        theme.CompanyName,
		},
		Totals: totals,
	}
	return doc, nil
}

// infoGrid lays out the two-row metadata grid. The grouping mirrors the
// printed sheet: commercial fields on the first row, block and logistics
// fields on the second, with the allowance rule shown next to the
// container number.
func infoGrid(meta Metadata, totals measure.Totals) [][]InfoCell {
	container := meta.ContainerNo
	if meta.AllowanceText != "" {
		container = fmt.Sprintf("%s (%s)", meta.ContainerNo, meta.AllowanceText)
	}
	return [][]InfoCell{
		{
			{Label: "INVOICE NO", Value: meta.InvoiceNo},
			{Label: "DATE", Value: meta.Date.Format("02-Jan-2006")},
			{Label: "TOTAL SLABS", Value: fmt.Sprintf("%d", totals.SlabCount)},
		},
		{
			{Label: "THICKNESS", Value: meta.Thickness},
			{Label: "MINE / BLOCK", Value: meta.Mine},
			{Label: "CONTAINER NO", Value: container},
		},
	}
}

// measurementTable lays out the slab table: a two-row spanning header, one
// row per record, and the totals footer.
func measurementTable(records measure.RecordSet, totals measure.Totals) Table {
	t := Table{
		ColWidths: measurementColWidths,
		HeaderRows: [][]Cell{
			{
				{Text: "S.NO", ColSpan: 1, RowSpan: 2, Bold: true},
				{Text: "SLAB NO", ColSpan: 1, RowSpan: 2, Bold: true},
				{Text: "GROSS MEASUREMENT", ColSpan: 3, RowSpan: 1, Bold: true},
				covered(), covered(),
				{Text: "NET MEASUREMENT", ColSpan: 3, RowSpan: 1, Bold: true},
				covered(), covered(),
			},
			{
				covered(), covered(),
				boldCell("L (cm)"), boldCell("H (cm)"), boldCell("AREA (m2)"),
				boldCell("L (cm)"), boldCell("H (cm)"), boldCell("AREA (m2)"),
			},
		},
	}

	t.Rows = make([][]Cell, 0, len(records))
	for i, r := range records {
		t.Rows = append(t.Rows, []Cell{
			cell(fmt.Sprintf("%d", i+1)),
			boldCell(r.ID),
			cell(wholeNumber(r.GrossLength)),
			cell(wholeNumber(r.GrossHeight)),
			boldCell(r.GrossArea.StringFixed(3)),
			cell(wholeNumber(r.NetLength)),
			cell(wholeNumber(r.NetHeight)),
			boldCell(r.NetArea.StringFixed(3)),
		})
	}

	t.Footer = []Cell{
		cell(""),
		boldCell("TOTAL"),
		cell(""), cell(""),
		boldCell(totals.TotalGrossArea.StringFixed(3)),
		cell(""), cell(""),
		boldCell(totals.TotalNetArea.StringFixed(3)),
	}
	return t
}

// wholeNumber renders a dimension without decimals, as measured tapes are
// read on the yard.
func wholeNumber(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// FileName returns the download name for a generated report,
// Measurement_<material>_<invoice>.pdf, with path-hostile characters
// replaced.
func FileName(meta Metadata) string {
	return fmt.Sprintf("Measurement_%s_%s.pdf", sanitize(meta.Material), sanitize(meta.InvoiceNo))
}

// sanitize makes a metadata string safe to embed in a file name.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "untitled"
	}
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			sb.WriteRune('-')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
