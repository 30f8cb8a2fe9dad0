// Package pdfout renders a report.Document to a paginated A4 PDF.
//
// Pagination is managed directly rather than through the library's
// auto-page-break so the two-row measurement table header can repeat at
// the top of every page the table spills onto.
package pdfout

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/ruvello/slabsheet/assets"
	"github.com/ruvello/slabsheet/report"
)

const (
	pageW = 210.0 // A4 portrait, millimeters
	pageH = 297.0

	margin = 10.0

	rowH     = 7.0  // table row height
	infoRowH = 13.0 // metadata grid row height

	logoBoxW = 46.0 // logo aspect-fit box
	logoBoxH = 36.0

	sigImgBoxW = 40.0 // signature scan aspect-fit box
	sigImgBoxH = 15.0

	sigBlockH = 46.0 // room needed for the whole signature region
)

// Render draws doc into w as a single PDF.
func Render(doc *report.Document, w io.Writer) error {
	if len(doc.Table.Rows) == 0 {
		return errors.New("document has no measurement rows")
	}

	r := &renderer{
		pdf:   fpdf.New("P", "mm", "A4", ""),
		doc:   doc,
		theme: doc.Theme,
	}
	r.scaleColumns()

	r.pdf.SetTitle(doc.Header.Title, true)
	r.pdf.SetAutoPageBreak(false, 0)
	r.pdf.AddPage()

	y := margin
	y = r.drawHeader(y)
	y = r.drawInfoGrid(y)
	y = r.drawTable(y)
	r.drawSignature(y)

	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

type renderer struct {
	pdf   *fpdf.Fpdf
	doc   *report.Document
	theme report.Theme
	colW  []float64 // column widths scaled to the usable page width
}

// scaleColumns maps the document's relative column widths onto the usable
// page width.
func (r *renderer) scaleColumns() {
	usable := pageW - 2*margin
	var total float64
	for _, w := range r.doc.Table.ColWidths {
		total += w
	}
	r.colW = make([]float64, len(r.doc.Table.ColWidths))
	for i, w := range r.doc.Table.ColWidths {
		r.colW[i] = w / total * usable
	}
}

// colX returns the left edge of table column c.
func (r *renderer) colX(c int) float64 {
	x := margin
	for i := 0; i < c; i++ {
		x += r.colW[i]
	}
	return x
}

// spanWidth returns the width of a cell spanning cols [c, c+span).
func (r *renderer) spanWidth(c, span int) float64 {
	if span < 1 {
		span = 1
	}
	var w float64
	for i := c; i < c+span && i < len(r.colW); i++ {
		w += r.colW[i]
	}
	return w
}

func (r *renderer) setFill(c report.Color) { r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B)) }
func (r *renderer) setText(c report.Color) { r.pdf.SetTextColor(int(c.R), int(c.G), int(c.B)) }
func (r *renderer) setDraw(c report.Color) { r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B)) }

// drawHeader draws the logo, company identity, report title, and the
// accent divider. Returns the y below the region.
func (r *renderer) drawHeader(y float64) float64 {
	if logo := r.doc.Header.Logo; logo != nil {
		y = r.drawImage("logo", logo, (pageW-r.fitW(logo, logoBoxW, logoBoxH))/2, y, logoBoxW, logoBoxH) + 3
	}

	r.pdf.SetFont(r.theme.TitleFont, "B", 20)
	r.setText(r.theme.Ink)
	r.pdf.SetXY(margin, y)
	r.pdf.CellFormat(pageW-2*margin, 9, r.doc.Header.Company, "", 0, "C", false, 0, "")
	y += 10

	r.pdf.SetFont(r.theme.BodyFont, "", 7)
	r.setText(r.theme.Muted)
	r.pdf.SetXY(margin, y)
	r.pdf.CellFormat(pageW-2*margin, 4, r.doc.Header.Contact, "", 0, "C", false, 0, "")
	y += 5

	r.pdf.SetFont(r.theme.BodyFont, "B", 8)
	r.setText(r.theme.Accent)
	r.pdf.SetXY(margin, y)
	r.pdf.CellFormat(pageW-2*margin, 5, r.doc.Header.Title, "", 0, "C", false, 0, "")
	y += 7

	r.setDraw(r.theme.Accent)
	r.pdf.SetLineWidth(0.4)
	r.pdf.Line(margin, y, pageW-margin, y)
	return y + 5
}

// drawInfoGrid draws the two-row labeled metadata grid.
func (r *renderer) drawInfoGrid(y float64) float64 {
	r.setDraw(r.theme.GridLine)
	r.setFill(r.theme.PanelBG)
	r.pdf.SetLineWidth(0.2)

	for _, row := range r.doc.Info {
		cellW := (pageW - 2*margin) / float64(len(row))
		x := margin
		for _, c := range row {
			r.pdf.Rect(x, y, cellW, infoRowH, "FD")

			r.pdf.SetFont(r.theme.BodyFont, "B", 7)
			r.setText(r.theme.Muted)
			r.pdf.SetXY(x+2, y+1.5)
			r.pdf.CellFormat(cellW-4, 4, c.Label, "", 0, "L", false, 0, "")

			r.pdf.SetFont(r.theme.BodyFont, "B", 9)
			r.setText(r.theme.Ink)
			r.pdf.SetXY(x+2, y+6.5)
			r.pdf.CellFormat(cellW-4, 5, c.Value, "", 0, "L", false, 0, "")

			x += cellW
		}
		y += infoRowH
	}
	return y + 5
}

// drawTable draws the measurement table, breaking to new pages as needed
// and repeating the header rows on each.
func (r *renderer) drawTable(y float64) float64 {
	y = r.drawTableHeader(y)

	for i, row := range r.doc.Table.Rows {
		if y+rowH > pageH-margin-sigBlockH/2 {
			r.pdf.AddPage()
			y = r.drawTableHeader(margin)
		}
		zebra := r.theme.ZebraEven
		if i%2 == 1 {
			zebra = r.theme.ZebraOdd
		}
		y = r.drawRow(row, y, zebra, r.theme.Ink)
	}

	if y+rowH > pageH-margin-sigBlockH/2 {
		r.pdf.AddPage()
		y = r.drawTableHeader(margin)
	}
	lineY := y
	y = r.drawRow(r.doc.Table.Footer, y, r.theme.Accent, r.theme.Ink)

	r.setDraw(r.theme.Ink)
	r.pdf.SetLineWidth(0.6)
	r.pdf.Line(margin, lineY, pageW-margin, lineY)
	return y + 8
}

// drawTableHeader draws the two spanning header rows at y and returns the
// y below them.
func (r *renderer) drawTableHeader(y float64) float64 {
	rows := r.doc.Table.HeaderRows
	r.setDraw(r.theme.GridLine)
	r.pdf.SetLineWidth(0.2)

	bands := []report.Color{r.theme.Ink, r.theme.Muted}
	for i, row := range rows {
		r.setFill(bands[i%len(bands)])
		r.setText(r.theme.Accent)
		for c, cl := range row {
			if cl.Covered {
				continue
			}
			style := ""
			if cl.Bold {
				style = "B"
			}
			size := 7.0
			if i == 0 {
				size = 9
			}
			r.pdf.SetFont(r.theme.BodyFont, style, size)
			h := rowH * float64(max(cl.RowSpan, 1))
			r.pdf.SetXY(r.colX(c), y)
			r.pdf.CellFormat(r.spanWidth(c, cl.ColSpan), h, cl.Text, "1", 0, "CM", true, 0, "")
		}
		y += rowH
	}
	return y
}

// drawRow draws one full-width table row with the given fill and returns
// the y below it.
func (r *renderer) drawRow(row []report.Cell, y float64, fill, text report.Color) float64 {
	r.setDraw(r.theme.GridLine)
	r.setFill(fill)
	r.setText(text)
	r.pdf.SetLineWidth(0.2)

	for c, cl := range row {
		if cl.Covered {
			continue
		}
		style := ""
		if cl.Bold {
			style = "B"
		}
		r.pdf.SetFont(r.theme.BodyFont, style, 9)
		align := "CM"
		switch cl.Align {
		case report.AlignLeft:
			align = "LM"
		case report.AlignRight:
			align = "RM"
		}
		r.pdf.SetXY(r.colX(c), y)
		r.pdf.CellFormat(r.spanWidth(c, cl.ColSpan), rowH, cl.Text, "1", 0, align, true, 0, "")
	}
	return y + rowH
}

// drawSignature draws the closing signature region, moving to a fresh page
// when the current one cannot hold it.
func (r *renderer) drawSignature(y float64) {
	if y+sigBlockH > pageH-margin {
		r.pdf.AddPage()
		y = margin
	}
	sig := r.doc.Signature
	half := (pageW - 2*margin) / 2

	r.pdf.SetFont(r.theme.BodyFont, "", 9)
	r.setText(r.theme.Ink)
	r.pdf.SetXY(margin, y)
	r.pdf.CellFormat(half, 5, sig.InspectorLabel, "", 0, "C", false, 0, "")
	r.pdf.SetXY(margin+half, y)
	r.pdf.CellFormat(half, 5, sig.AuthorityLabel, "", 0, "C", false, 0, "")

	lineY := y + 28
	if sig.Image != nil {
		w := r.fitW(sig.Image, sigImgBoxW, sigImgBoxH)
		r.drawImage("signature", sig.Image, margin+half+(half-w)/2, lineY-sigImgBoxH-1, sigImgBoxW, sigImgBoxH)
	}

	r.pdf.SetFont(r.theme.BodyFont, "", 9)
	r.setText(r.theme.Ink)
	r.pdf.SetXY(margin, lineY)
	r.pdf.CellFormat(half, 5, "_______________________", "", 0, "C", false, 0, "")
	r.pdf.SetXY(margin+half, lineY)
	r.pdf.CellFormat(half, 5, "_______________________", "", 0, "C", false, 0, "")

	r.pdf.SetFont(r.theme.BodyFont, "B", 9)
	r.pdf.SetXY(margin+half, lineY+6)
	r.pdf.CellFormat(half, 5, "For "+sig.Company, "", 0, "C", false, 0, "")
}

// drawImage embeds an asset aspect-fit inside a boxW x boxH box whose top
// left is at (x, y), and returns the y below the drawn image.
func (r *renderer) drawImage(name string, im *assets.Image, x, y, boxW, boxH float64) float64 {
	w, h := im.FitBox(boxW, boxH)
	opts := fpdf.ImageOptions{ImageType: im.Format, ReadDpi: false}
	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(im.Data))
	r.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return y + h
}

// fitW returns just the fitted width of an asset inside a box.
func (r *renderer) fitW(im *assets.Image, boxW, boxH float64) float64 {
	w, _ := im.FitBox(boxW, boxH)
	return w
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
