package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ruvello/slabsheet/allowance"
)

// FromColumns builds a record set from two parallel newline-delimited
// numeric lists, the dual-column entry mode. Blank lines are dropped before
// counting. The lists must agree on length; a mismatch returns
// [ErrCountMismatch] and no records. Ids are generated sequentially and net
// dimensions are derived from the allowance rule.
func FromColumns(lengths, heights string, rule allowance.Rule) (RecordSet, error) {
	ls := splitValues(lengths)
	hs := splitValues(heights)
	if len(ls) != len(hs) {
		return nil, fmt.Errorf("%w: %d lengths, %d heights", ErrCountMismatch, len(ls), len(hs))
	}

	rs := make(RecordSet, 0, len(ls))
	for i := range ls {
		gl, errL := parseNumber(ls[i])
		gh, errH := parseNumber(hs[i])
		if errL != nil || errH != nil {
			return nil, fmt.Errorf("row %d: invalid dimension %q x %q", i+1, ls[i], hs[i])
		}
		rs = append(rs, deriveRecord(seqID(len(rs)+1), gl, gh, rule))
	}
	return rs, nil
}

// FromPaste builds a record set from a combined block of delimited rows,
// the spreadsheet-paste mode. Rows are tab-delimited when tabs are present
// (the clipboard format every spreadsheet emits) and whitespace-delimited
// otherwise. Each row is one of:
//
//	grossL  grossH                      sequential id, nets derived
//	id  grossL  grossH                  pasted id, nets derived
//	id  grossL  grossH  netL  netH      pasted id, nets passed through
//
// Malformed rows, including header rows copied along with the data, are
// skipped rather than failing the batch.
func FromPaste(block string, rule allowance.Rule) RecordSet {
	return FromRows(splitRows(block), rule)
}

// FromRows builds a record set from pre-split field rows. This is the entry
// point shared by the paste, HTML clipboard, xlsx, and OCR input paths.
// Row handling follows the same shape rules as [FromPaste].
func FromRows(rows [][]string, rule allowance.Rule) RecordSet {
	rs := make(RecordSet, 0, len(rows))
	for _, fields := range rows {
		rec, ok := parseRow(fields, rule, len(rs)+1)
		if !ok {
			continue
		}
		rs = append(rs, rec)
	}
	return rs
}

// parseRow converts one field row into a record. seq is the 1-based position
// the record will take, used when the row carries no id of its own.
func parseRow(fields []string, rule allowance.Rule, seq int) (Record, bool) {
	trimmed := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			trimmed = append(trimmed, f)
		}
	}

	switch {
	case len(trimmed) < 2:
		return Record{}, false

	case len(trimmed) == 2:
		gl, errL := parseNumber(trimmed[0])
		gh, errH := parseNumber(trimmed[1])
		if errL != nil || errH != nil {
			return Record{}, false
		}
		return deriveRecord(seqID(seq), gl, gh, rule), true

	case len(trimmed) >= 5:
		gl, err := parseNumber(trimmed[1])
		if err != nil {
			return Record{}, false
		}
		gh, err := parseNumber(trimmed[2])
		if err != nil {
			return Record{}, false
		}
		nl, err := parseNumber(trimmed[3])
		if err != nil {
			return Record{}, false
		}
		nh, err := parseNumber(trimmed[4])
		if err != nil {
			return Record{}, false
		}
		return newRecord(trimmed[0], gl, gh, nl, nh), true

	default: // 3 or 4 usable fields
		gl, errL := parseNumber(trimmed[1])
		gh, errH := parseNumber(trimmed[2])
		if errL != nil || errH != nil {
			return Record{}, false
		}
		return deriveRecord(trimmed[0], gl, gh, rule), true
	}
}

// splitValues splits a newline-delimited list into trimmed non-blank entries.
func splitValues(s string) []string {
	out := make([]string, 0, 8)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitRows splits a pasted block into field rows. Blank lines are dropped.
func splitRows(block string) [][]string {
	lines := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "\t") {
			rows = append(rows, strings.Split(line, "\t"))
		} else {
			rows = append(rows, strings.Fields(line))
		}
	}
	return rows
}

// parseNumber parses a dimension value. Digit grouping commas are removed
// first so values copied from formatted spreadsheet cells ("1,280") parse.
// ParseFloat also accepts "inf" and "nan" spellings; those are not
// dimensions and are rejected so they hit the same skip/abort paths as any
// other unusable field.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
