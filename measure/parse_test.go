package measure

import (
	"errors"
	"testing"

	"github.com/ruvello/slabsheet/allowance"
)

func TestFromColumns(t *testing.T) {
	rule := allowance.Rule{Length: 4, Height: 5}

	rs, err := FromColumns("280\n290\n\n300\n", "180\n190\n200", rule)
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}
	if len(rs) != 3 {
		t.Fatalf("got %d records, want 3", len(rs))
	}
	for i, wantID := range []string{"RG-1", "RG-2", "RG-3"} {
		if rs[i].ID != wantID {
			t.Errorf("record %d id = %s, want %s", i, rs[i].ID, wantID)
		}
	}
	if rs[2].GrossLength != 300 || rs[2].NetLength != 296 || rs[2].NetHeight != 195 {
		t.Errorf("record 3 = %+v, want gross 300 net 296x195", rs[2])
	}
}

func TestFromColumnsCountMismatch(t *testing.T) {
	_, err := FromColumns("280\n290\n300", "180\n190", allowance.Rule{})
	if !errors.Is(err, ErrCountMismatch) {
		t.Fatalf("err = %v, want ErrCountMismatch", err)
	}
}

func TestFromColumnsNonNumeric(t *testing.T) {
	_, err := FromColumns("280\nabc", "180\n190", allowance.Rule{})
	if err == nil {
		t.Fatal("non-numeric value in column mode must fail, got nil error")
	}
	if errors.Is(err, ErrCountMismatch) {
		t.Fatalf("err = %v, should not be a count mismatch", err)
	}
}

func TestFromColumnsCommaGrouping(t *testing.T) {
	rs, err := FromColumns("1,280", "180", allowance.Rule{})
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}
	if rs[0].GrossLength != 1280 {
		t.Errorf("GrossLength = %g, want 1280", rs[0].GrossLength)
	}
}

func TestFromPaste(t *testing.T) {
	rule := allowance.Rule{Length: 4, Height: 5}

	tests := []struct {
		name    string
		block   string
		wantLen int
		check   func(t *testing.T, rs RecordSet)
	}{
		{
			name:    "five column paste passes nets through",
			block:   "RG-1\t280\t180\t275\t175\nRG-2\t290\t190\t285\t185",
			wantLen: 2,
			check: func(t *testing.T, rs RecordSet) {
				if rs[0].ID != "RG-1" {
					t.Errorf("id = %s, want RG-1", rs[0].ID)
				}
				if rs[0].NetLength != 275 || rs[0].NetHeight != 175 {
					t.Errorf("net = %gx%g, want 275x175 (pass-through, not derived)", rs[0].NetLength, rs[0].NetHeight)
				}
			},
		},
		{
			name:    "three column paste derives nets",
			block:   "A-7\t280\t180",
			wantLen: 1,
			check: func(t *testing.T, rs RecordSet) {
				if rs[0].ID != "A-7" {
					t.Errorf("id = %s, want pasted id A-7", rs[0].ID)
				}
				if rs[0].NetLength != 276 || rs[0].NetHeight != 175 {
					t.Errorf("net = %gx%g, want derived 276x175", rs[0].NetLength, rs[0].NetHeight)
				}
			},
		},
		{
			name:    "two column paste assigns sequential ids",
			block:   "280\t180\n290\t190",
			wantLen: 2,
			check: func(t *testing.T, rs RecordSet) {
				if rs[0].ID != "RG-1" || rs[1].ID != "RG-2" {
					t.Errorf("ids = %s, %s; want RG-1, RG-2", rs[0].ID, rs[1].ID)
				}
			},
		},
		{
			name:    "header row is skipped",
			block:   "Slab No\tGross L\tGross H\nRG-1\t280\t180",
			wantLen: 1,
			check:   func(t *testing.T, rs RecordSet) {},
		},
		{
			name:    "malformed row is skipped not fatal",
			block:   "RG-1\t280\t180\nRG-2\tbad\t190\nRG-3\t290\t190",
			wantLen: 2,
			check: func(t *testing.T, rs RecordSet) {
				if rs[1].ID != "RG-3" {
					t.Errorf("second kept id = %s, want RG-3", rs[1].ID)
				}
			},
		},
		{
			name:    "whitespace delimited rows",
			block:   "280 180\n290 190",
			wantLen: 2,
			check:   func(t *testing.T, rs RecordSet) {},
		},
		{
			name:    "blank lines and crlf",
			block:   "RG-1\t280\t180\r\n\r\nRG-2\t290\t190\r\n",
			wantLen: 2,
			check:   func(t *testing.T, rs RecordSet) {},
		},
		{
			name:    "single field rows are skipped",
			block:   "280\n290",
			wantLen: 0,
			check:   func(t *testing.T, rs RecordSet) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := FromPaste(tt.block, rule)
			if len(rs) != tt.wantLen {
				t.Fatalf("got %d records, want %d", len(rs), tt.wantLen)
			}
			if tt.wantLen > 0 {
				tt.check(t, rs)
			}
		})
	}
}

func TestFromColumnsRejectsNonFiniteValues(t *testing.T) {
	// strconv.ParseFloat accepts these spellings, but they are not
	// dimensions; column mode must report them, not crash on them.
	for _, bad := range []string{"inf", "-inf", "Inf", "nan", "1e500"} {
		if _, err := FromColumns(bad, "180", allowance.Rule{}); err == nil {
			t.Errorf("FromColumns(%q) expected error, got nil", bad)
		}
	}
}

func TestFromColumnsOverflowingProduct(t *testing.T) {
	// Both values parse as finite floats but their product overflows
	// float64. The area must still come out finite and positive.
	rs, err := FromColumns("1e300", "1e300", allowance.Rule{})
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("got %d records, want 1", len(rs))
	}
	if !rs[0].GrossArea.IsPositive() {
		t.Errorf("GrossArea = %s, want a positive finite value", rs[0].GrossArea)
	}
	totals := rs.Filter().Totals()
	if !totals.TotalGrossArea.IsPositive() {
		t.Errorf("TotalGrossArea = %s, want positive", totals.TotalGrossArea)
	}
}

func TestFromPasteSkipsNonFiniteRows(t *testing.T) {
	rule := allowance.Rule{Length: 4, Height: 5}
	block := "RG-1\tinf\t180\nRG-2\tnan\t190\nRG-3\t290\tinf\nRG-4\t290\t190"
	rs := FromPaste(block, rule)
	if len(rs) != 1 {
		t.Fatalf("got %d records, want 1 (non-finite rows skipped)", len(rs))
	}
	if rs[0].ID != "RG-4" {
		t.Errorf("kept id = %s, want RG-4", rs[0].ID)
	}
}

func TestFromRowsSequentialIDsCountKeptRows(t *testing.T) {
	// The skipped middle row must not advance the sequence.
	rows := [][]string{
		{"280", "180"},
		{"bad", "row"},
		{"290", "190"},
	}
	rs := FromRows(rows, allowance.Rule{})
	if len(rs) != 2 {
		t.Fatalf("got %d records, want 2", len(rs))
	}
	if rs[1].ID != "RG-2" {
		t.Errorf("second id = %s, want RG-2", rs[1].ID)
	}
}
