package pdfout

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ruvello/slabsheet/allowance"
	"github.com/ruvello/slabsheet/measure"
	"github.com/ruvello/slabsheet/report"
)

func buildDoc(t *testing.T, rows int) *report.Document {
	t.Helper()
	var lengths, heights strings.Builder
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&lengths, "%d\n", 280+i)
		fmt.Fprintf(&heights, "%d\n", 180+i)
	}
	rs, err := measure.FromColumns(lengths.String(), heights.String(), allowance.Rule{Length: 4, Height: 5})
	if err != nil {
		t.Fatalf("building records: %v", err)
	}
	meta := report.Metadata{
		Material:    "Absolute Black",
		InvoiceNo:   "EXP/2026/001",
		Date:        time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		Thickness:   "16MM",
		ContainerNo: "TGHU 1234567",
		Mine:        "KODAD",
	}
	doc, err := report.Build(meta, rs, report.DefaultTheme())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(buildDoc(t, 3), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if buf.Len() < 1000 {
		t.Errorf("output suspiciously small: %d bytes", buf.Len())
	}
}

func TestRenderMultiPage(t *testing.T) {
	var small, large bytes.Buffer
	if err := Render(buildDoc(t, 3), &small); err != nil {
		t.Fatalf("Render small: %v", err)
	}
	// Enough rows to force at least one table page break.
	if err := Render(buildDoc(t, 120), &large); err != nil {
		t.Fatalf("Render large: %v", err)
	}
	if large.Len() <= small.Len() {
		t.Errorf("120-row report (%d bytes) not larger than 3-row report (%d bytes)", large.Len(), small.Len())
	}
	// A multi-page PDF carries more than one /Page object.
	if n := bytes.Count(large.Bytes(), []byte("/Type /Page")); n < 3 {
		t.Errorf("expected multiple pages in 120-row report, found %d page markers", n)
	}
}

func TestRenderDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := Render(buildDoc(t, 5), &a); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := Render(buildDoc(t, 5), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if a.Len() != b.Len() {
		t.Errorf("two renders of the same document differ in size: %d vs %d", a.Len(), b.Len())
	}
}

func TestRenderEmptyDocumentFails(t *testing.T) {
	doc := &report.Document{Theme: report.DefaultTheme()}
	var buf bytes.Buffer
	if err := Render(doc, &buf); err == nil {
		t.Fatal("rendering a document with no rows must fail")
	}
	if buf.Len() != 0 {
		t.Errorf("failed render still wrote %d bytes", buf.Len())
	}
}
