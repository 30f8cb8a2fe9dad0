// Package slabsheet provides a fluent API for turning spreadsheet
// measurements of stone slabs into a paginated PDF inspection report.
//
// Basic usage:
//
//	meta := report.Metadata{Material: "Absolute Black", InvoiceNo: "EXP/2026/001", Date: date}
//	warnings, err := slabsheet.New(meta).
//	    Paste(clipboard).
//	    Logo("logo.png").
//	    WritePDF(out)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", slabsheet.FormatWarnings(warnings))
//	}
//
// For finer control, the lower-level allowance, measure, report, and
// pdfout packages are also available.
package slabsheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruvello/slabsheet/allowance"
	"github.com/ruvello/slabsheet/assets"
	"github.com/ruvello/slabsheet/format"
	"github.com/ruvello/slabsheet/htmldoc"
	"github.com/ruvello/slabsheet/measure"
	"github.com/ruvello/slabsheet/ocr"
	"github.com/ruvello/slabsheet/pdfout"
	"github.com/ruvello/slabsheet/report"
	"github.com/ruvello/slabsheet/xlsx"
)

// Warning is a non-fatal problem noted while assembling a report, such as
// an unreadable logo file. Warnings never block generation.
type Warning struct {
	Stage   string // which step noted the problem
	Message string
}

// FormatWarnings joins warnings into a readable one-per-line string.
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %s", w.Stage, w.Message)
	}
	return sb.String()
}

// Builder assembles one report through chained configuration. Input
// errors are deferred to the terminal operations (Document, WritePDF,
// SaveFile), matching the fluent style: configure everything, then ask
// for the result once.
type Builder struct {
	meta     report.Metadata
	theme    report.Theme
	opts     buildOptions
	records  measure.RecordSet
	logo     *assets.Image
	sigImage *assets.Image
	warnings []Warning
	err      error
}

// New starts a report for the given metadata with the default theme.
func New(meta report.Metadata) *Builder {
	return &Builder{
		meta:  meta,
		theme: report.DefaultTheme(),
		opts:  defaultOptions(),
	}
}

// Theme replaces the visual theme.
func (b *Builder) Theme(t report.Theme) *Builder {
	b.theme = t
	return b
}

// SwapAllowance reverses the allowance orientation: the first number in
// the rule becomes the length deduction instead of the height deduction.
func (b *Builder) SwapAllowance() *Builder {
	b.opts.swapAllowance = true
	return b
}

// Sheet selects the worksheet to read when the input is a workbook.
func (b *Builder) Sheet(name string) *Builder {
	b.opts.sheet = name
	return b
}

// rule computes the allowance rule from the metadata's rule text.
func (b *Builder) rule() allowance.Rule {
	return allowance.Parse(b.meta.AllowanceText, b.opts.swapAllowance)
}

// Records supplies an already-built working set, e.g. one the caller
// edited after parsing. It replaces any previously parsed records.
func (b *Builder) Records(rs measure.RecordSet) *Builder {
	b.records = rs
	return b
}

// Columns parses the dual-column entry mode: two parallel newline-
// delimited lists of gross lengths and gross heights.
func (b *Builder) Columns(lengths, heights string) *Builder {
	if b.err != nil {
		return b
	}
	rs, err := measure.FromColumns(lengths, heights, b.rule())
	if err != nil {
		b.err = err
		return b
	}
	b.records = rs
	return b
}

// Paste parses a combined spreadsheet paste block.
func (b *Builder) Paste(block string) *Builder {
	if b.err != nil {
		return b
	}
	b.records = measure.FromPaste(block, b.rule())
	return b
}

// Rows parses pre-split field rows, the shape the input packages produce.
func (b *Builder) Rows(rows [][]string) *Builder {
	if b.err != nil {
		return b
	}
	b.records = measure.FromRows(rows, b.rule())
	return b
}

// InputFile reads measurements from a file of any supported kind: pasted
// text, spreadsheet clipboard HTML, an .xlsx workbook, or a photo of a
// measurement sheet (OCR builds only). The kind is sniffed from the
// extension, then from content.
func (b *Builder) InputFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	data, err := os.ReadFile(path)
	if err != nil {
		b.err = fmt.Errorf("reading input %s: %w", path, err)
		return b
	}
	return b.Input(data, filepath.Base(path))
}

// Input reads measurements from raw bytes. name is used only for kind
// detection and may be empty.
func (b *Builder) Input(data []byte, name string) *Builder {
	if b.err != nil {
		return b
	}

	kind := format.Detect(name)
	if kind == format.Unknown {
		kind = format.DetectData(data)
	}

	switch kind {
	case format.Text:
		b.records = measure.FromPaste(string(data), b.rule())
	case format.HTML:
		rows, err := htmldoc.Rows(bytes.NewReader(data))
		if err != nil {
			b.err = err
			return b
		}
		b.records = measure.FromRows(rows, b.rule())
	case format.XLSX:
		rows, err := xlsx.RowsFrom(bytes.NewReader(data), b.opts.sheet)
		if err != nil {
			b.err = err
			return b
		}
		b.records = measure.FromRows(rows, b.rule())
	case format.Image:
		client, err := ocr.New()
		if err != nil {
			b.err = err
			return b
		}
		defer client.Close()
		rows, err := client.RecognizeRows(data)
		if err != nil {
			b.err = err
			return b
		}
		b.records = measure.FromRows(rows, b.rule())
	default:
		b.err = fmt.Errorf("unrecognized input %s", name)
	}
	return b
}

// Logo attaches the company logo from a file. A missing or undecodable
// file is a warning, not an error: the report simply renders without it.
func (b *Builder) Logo(path string) *Builder {
	im, err := assets.LoadFile(path)
	if err != nil {
		b.warn("logo", err)
		return b
	}
	b.logo = im
	return b
}

// LogoFrom attaches the company logo from a byte source.
func (b *Builder) LogoFrom(r io.Reader) *Builder {
	im, err := assets.Load(r)
	if err != nil {
		b.warn("logo", err)
		return b
	}
	b.logo = im
	return b
}

// SignatureImage attaches a signature scan from a file, drawn above the
// authorized signatory line. Failures are warnings, like Logo.
func (b *Builder) SignatureImage(path string) *Builder {
	im, err := assets.LoadFile(path)
	if err != nil {
		b.warn("signature", err)
		return b
	}
	b.sigImage = im
	return b
}

func (b *Builder) warn(stage string, err error) {
	b.warnings = append(b.warnings, Warning{Stage: stage, Message: err.Error()})
}

// Document assembles the structural report document. It returns
// measure.ErrNoRecords when no measurable slabs survived parsing and
// filtering, along with any warnings accumulated so far.
func (b *Builder) Document() (*report.Document, []Warning, error) {
	warnings := append([]Warning(nil), b.warnings...)
	if b.err != nil {
		return nil, warnings, b.err
	}
	doc, err := report.Build(b.meta, b.records, b.theme)
	if err != nil {
		return nil, warnings, err
	}
	doc.Header.Logo = b.logo
	doc.Signature.Image = b.sigImage
	return doc, warnings, nil
}

// WritePDF assembles the document and renders it into w.
func (b *Builder) WritePDF(w io.Writer) ([]Warning, error) {
	doc, warnings, err := b.Document()
	if err != nil {
		return warnings, err
	}
	return warnings, pdfout.Render(doc, w)
}

// SaveFile renders the report into dir under the standard download name,
// Measurement_<material>_<invoice>.pdf, and returns the written path.
func (b *Builder) SaveFile(dir string) (string, []Warning, error) {
	doc, warnings, err := b.Document()
	if err != nil {
		return "", warnings, err
	}

	path := filepath.Join(dir, report.FileName(b.meta))
	f, err := os.Create(path)
	if err != nil {
		return "", warnings, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := pdfout.Render(doc, f); err != nil {
		return "", warnings, err
	}
	return path, warnings, nil
}

// Must is a helper that wraps a call returning (T, error) and panics on
// error. It is intended for scripts and tests.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
