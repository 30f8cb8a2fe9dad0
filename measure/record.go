// Package measure builds slab measurement records from raw operator input
// and aggregates them into report totals.
//
// The working unit is the [RecordSet], an ordered, caller-owned collection of
// [Record] values. Input parsers produce a RecordSet, the caller may edit it,
// and report generation consumes the filtered set. Nothing in this package
// holds state between calls.
package measure

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ruvello/slabsheet/allowance"
)

// ErrCountMismatch is returned when the gross length and gross height
// columns contain a different number of values.
var ErrCountMismatch = errors.New("length and height counts do not match")

// ErrNoRecords is returned when report generation is attempted over a set
// with no measurable slabs.
var ErrNoRecords = errors.New("no measurable slabs in record set")

// Record is one measured slab. Dimensions are centimeters, areas are square
// meters rounded to three decimal places.
type Record struct {
	ID          string
	GrossLength float64
	GrossHeight float64
	NetLength   float64
	NetHeight   float64
	GrossArea   decimal.Decimal
	NetArea     decimal.Decimal
}

// Measurable reports whether the record carries a real measurement:
// both gross dimensions positive. Blank editor rows and zeroed padding
// rows are not measurable.
func (r Record) Measurable() bool {
	return r.GrossLength > 0 && r.GrossHeight > 0
}

// RecordSet is an ordered collection of slab records. The order is the
// display order: parsers emit input order, and any caller-side reordering
// is preserved through filtering and layout.
type RecordSet []Record

// Filter returns the records that carry a real measurement, in order.
// The receiver is not modified.
func (rs RecordSet) Filter() RecordSet {
	out := make(RecordSet, 0, len(rs))
	for _, r := range rs {
		if r.Measurable() {
			out = append(out, r)
		}
	}
	return out
}

// Totals holds the report-level aggregates over a filtered record set.
type Totals struct {
	SlabCount      int
	TotalGrossArea decimal.Decimal
	TotalNetArea   decimal.Decimal
}

// Totals sums the already-rounded per-record areas. Summing rounded values
// keeps the totals row equal to the sum of the printed rows; re-rounding a
// raw total can disagree with the column by a thousandth or more.
func (rs RecordSet) Totals() Totals {
	t := Totals{
		SlabCount:      len(rs),
		TotalGrossArea: decimal.Zero,
		TotalNetArea:   decimal.Zero,
	}
	for _, r := range rs {
		t.TotalGrossArea = t.TotalGrossArea.Add(r.GrossArea)
		t.TotalNetArea = t.TotalNetArea.Add(r.NetArea)
	}
	return t
}

// Blank returns a record set of n empty rows with sequential ids, matching
// the empty grid an operator starts from before pasting or typing values.
func Blank(n int) RecordSet {
	rs := make(RecordSet, n)
	for i := range rs {
		rs[i] = newRecord(seqID(i+1), 0, 0, 0, 0)
	}
	return rs
}

// area converts centimeter dimensions to square meters rounded to three
// decimal places. decimal.NewFromFloat panics on non-finite input, so
// non-finite dimensions yield a zero area and a finite-dimension product
// that overflows float64 is computed in decimal instead.
func area(l, h float64) decimal.Decimal {
	if math.IsInf(l, 0) || math.IsNaN(l) || math.IsInf(h, 0) || math.IsNaN(h) {
		return decimal.Zero
	}
	p := l * h / 10000
	if math.IsInf(p, 0) {
		return decimal.NewFromFloat(l).Mul(decimal.NewFromFloat(h)).Shift(-4).Round(3)
	}
	return decimal.NewFromFloat(p).Round(3)
}

// newRecord builds a record with derived areas from explicit dimensions.
func newRecord(id string, gl, gh, nl, nh float64) Record {
	return Record{
		ID:          id,
		GrossLength: gl,
		GrossHeight: gh,
		NetLength:   nl,
		NetHeight:   nh,
		GrossArea:   area(gl, gh),
		NetArea:     area(nl, nh),
	}
}

// deriveRecord builds a record whose net dimensions come from the allowance
// rule. Nets are not clamped: a deduction larger than the slab goes negative
// and shows up as such in the report.
func deriveRecord(id string, gl, gh float64, rule allowance.Rule) Record {
	return newRecord(id, gl, gh, gl-rule.Length, gh-rule.Height)
}

// seqID formats the generated slab identifier for position n (1-based).
func seqID(n int) string {
	return fmt.Sprintf("RG-%d", n)
}
