// Package allowance parses edge-loss deduction rules from free-form text.
//
// An allowance rule describes how many centimeters are trimmed from each
// slab dimension before billing. Operators write these rules in whatever
// shorthand their mine uses ("-5 x 4", "5/4", "deduct 5cm"), so parsing is
// deliberately forgiving: only the digit runs matter.
package allowance

// Rule holds the deduction magnitudes, in centimeters, subtracted from the
// gross dimensions of every slab in a report.
type Rule struct {
	Length float64
	Height float64
}

// Zero reports whether the rule deducts nothing.
func (r Rule) Zero() bool {
	return r.Length == 0 && r.Height == 0
}

// Parse extracts a deduction rule from free-form text.
//
// All maximal digit runs in s are read left to right as non-negative
// integers; sign characters are ignored, so "-5" parses as 5. The first
// run maps to the height deduction and the second to the length deduction;
// swap reverses that orientation. When only one run is present both
// deductions take its value, and when none is present both are zero.
//
// Parse never fails: any string, including the empty string, yields a Rule.
func Parse(s string, swap bool) Rule {
	first, second, found := digitRuns(s)
	switch found {
	case 0:
		return Rule{}
	case 1:
		return Rule{Length: first, Height: first}
	}
	if swap {
		return Rule{Length: first, Height: second}
	}
	return Rule{Length: second, Height: first}
}

// digitRuns scans s for the first two maximal runs of ASCII digits and
// returns them as floats along with how many runs were found (capped at 2).
func digitRuns(s string) (first, second float64, found int) {
	var cur float64
	inRun := false

	emit := func() {
		if !inRun {
			return
		}
		switch found {
		case 0:
			first = cur
		case 1:
			second = cur
		}
		found++
		cur = 0
		inRun = false
	}

	for _, r := range s {
		if r >= '0' && r <= '9' {
			cur = cur*10 + float64(r-'0')
			inRun = true
			continue
		}
		emit()
		if found == 2 {
			return first, second, found
		}
	}
	emit()
	return first, second, found
}
