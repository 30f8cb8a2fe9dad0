// Package xlsx imports measurement rows directly from an Excel workbook,
// skipping the copy-paste step when the operator already has the
// measurements in a file.
//
// Only cell text is read; formulas come back as their computed values and
// styling is ignored. The first sheet is used unless a sheet name is given.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheet is returned when the workbook has no sheets or the named
// sheet does not exist.
var ErrNoSheet = errors.New("worksheet not found")

// Rows reads the cell text of a worksheet from a workbook file, one slice
// per row. An empty sheet name selects the first sheet.
func Rows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return sheetRows(f, sheet)
}

// RowsFrom reads a workbook from r, for callers holding bytes rather than
// a path.
func RowsFrom(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return sheetRows(f, sheet)
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrNoSheet
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSheet, sheet)
	}
	return rows, nil
}
