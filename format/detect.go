// Package format detects the kind of a measurement input source so the
// right parser can be chosen without asking the operator.
package format

import (
	"path/filepath"
	"strings"
)

// Kind represents a supported measurement input kind.
type Kind int

const (
	// Unknown indicates an unrecognized input.
	Unknown Kind = iota
	// Text indicates plain pasted rows (tab, space, or newline delimited).
	Text
	// HTML indicates spreadsheet clipboard content in HTML flavor.
	HTML
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// Image indicates a raster photo of a measurement sheet (OCR input).
	Image
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case XLSX:
		return "XLSX"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Detect determines the input kind from a filename extension. Returns
// Unknown when the extension is not conclusive; callers should then fall
// back to [DetectData].
func Detect(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".csv", ".tsv":
		return Text
	case ".html", ".htm":
		return HTML
	case ".xlsx":
		return XLSX
	case ".png", ".jpg", ".jpeg", ".gif":
		return Image
	default:
		return Unknown
	}
}

// DetectData determines the input kind from content. Magic bytes identify
// the binary kinds; anything that is not binary and does not look like
// HTML is treated as pasted text.
func DetectData(data []byte) Kind {
	if len(data) >= 4 {
		// ZIP magic: the only ZIP container accepted here is a workbook.
		if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
			return XLSX
		}
		// PNG magic: \x89PNG
		if data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G' {
			return Image
		}
		// JPEG magic: \xFF\xD8\xFF
		if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
			return Image
		}
		// GIF magic: GIF8
		if data[0] == 'G' && data[1] == 'I' && data[2] == 'F' && data[3] == '8' {
			return Image
		}
	}
	if looksLikeHTML(data) {
		return HTML
	}
	if len(data) == 0 {
		return Unknown
	}
	return Text
}

// looksLikeHTML checks for markup signatures at the start of the data.
// Spreadsheet clipboard HTML usually starts with <html or a bare <table
// fragment rather than a doctype.
func looksLikeHTML(data []byte) bool {
	s := strings.TrimSpace(string(data[:min(512, len(data))]))
	if s == "" || s[0] != '<' {
		return false
	}
	upper := strings.ToUpper(s)
	for _, sig := range []string{"<!DOCTYPE HTML", "<HTML", "<TABLE", "<?XML"} {
		if strings.HasPrefix(upper, sig) {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
