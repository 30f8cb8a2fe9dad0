package measure

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ruvello/slabsheet/allowance"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFilterDropsUnmeasurableRows(t *testing.T) {
	rs := RecordSet{
		newRecord("RG-1", 280, 180, 276, 175),
		newRecord("RG-2", 0, 180, 0, 175),
		newRecord("RG-3", 290, 0, 286, 0),
		newRecord("RG-4", 0, 0, 0, 0),
		newRecord("RG-5", 290, 190, 286, 185),
	}

	got := rs.Filter()
	if len(got) != 2 {
		t.Fatalf("Filter() kept %d records, want 2", len(got))
	}
	if got[0].ID != "RG-1" || got[1].ID != "RG-5" {
		t.Errorf("Filter() kept ids %s, %s; want RG-1, RG-5", got[0].ID, got[1].ID)
	}
	if len(rs) != 5 {
		t.Errorf("Filter() modified the receiver, len = %d", len(rs))
	}
}

func TestTotalsSumsRoundedAreas(t *testing.T) {
	// Each slab has raw area 1.000607 m2, which rounds up to 1.001.
	// Sum of rounded rows is 3.003; rounding the raw total 3.001821
	// would give 3.002 instead. The totals row must match the column.
	rule := allowance.Rule{}
	rs, err := FromColumns("101\n101\n101", "99.07\n99.07\n99.07", rule)
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}

	for i, r := range rs {
		if !r.GrossArea.Equal(dec("1.001")) {
			t.Errorf("record %d GrossArea = %s, want 1.001", i, r.GrossArea)
		}
	}

	totals := rs.Filter().Totals()
	if totals.SlabCount != 3 {
		t.Errorf("SlabCount = %d, want 3", totals.SlabCount)
	}
	if !totals.TotalGrossArea.Equal(dec("3.003")) {
		t.Errorf("TotalGrossArea = %s, want 3.003 (sum of rounded rows)", totals.TotalGrossArea)
	}
}

func TestTotalsEmptySet(t *testing.T) {
	totals := RecordSet{}.Totals()
	if totals.SlabCount != 0 {
		t.Errorf("SlabCount = %d, want 0", totals.SlabCount)
	}
	if !totals.TotalGrossArea.IsZero() || !totals.TotalNetArea.IsZero() {
		t.Errorf("empty totals = %s / %s, want zero", totals.TotalGrossArea, totals.TotalNetArea)
	}
}

func TestBlank(t *testing.T) {
	rs := Blank(5)
	if len(rs) != 5 {
		t.Fatalf("Blank(5) len = %d", len(rs))
	}
	if rs[0].ID != "RG-1" || rs[4].ID != "RG-5" {
		t.Errorf("Blank ids = %s..%s, want RG-1..RG-5", rs[0].ID, rs[4].ID)
	}
	if len(rs.Filter()) != 0 {
		t.Error("blank rows must not survive filtering")
	}
}

func TestEndToEndWorkedExample(t *testing.T) {
	rule := allowance.Parse("-5 x 4", false)
	if rule.Length != 4 || rule.Height != 5 {
		t.Fatalf("rule = %+v, want length 4 height 5", rule)
	}

	rs, err := FromColumns("280\n290", "180\n190", rule)
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}

	want := []struct {
		id         string
		netL, netH float64
		gross, net string
	}{
		{"RG-1", 276, 175, "5.040", "4.830"},
		{"RG-2", 286, 185, "5.510", "5.291"},
	}
	for i, w := range want {
		r := rs[i]
		if r.ID != w.id {
			t.Errorf("record %d id = %s, want %s", i, r.ID, w.id)
		}
		if r.NetLength != w.netL || r.NetHeight != w.netH {
			t.Errorf("record %d net = %gx%g, want %gx%g", i, r.NetLength, r.NetHeight, w.netL, w.netH)
		}
		if got := r.GrossArea.StringFixed(3); got != w.gross {
			t.Errorf("record %d gross area = %s, want %s", i, got, w.gross)
		}
		if got := r.NetArea.StringFixed(3); got != w.net {
			t.Errorf("record %d net area = %s, want %s", i, got, w.net)
		}
	}

	totals := rs.Filter().Totals()
	if totals.SlabCount != 2 {
		t.Errorf("SlabCount = %d, want 2", totals.SlabCount)
	}
	if got := totals.TotalGrossArea.StringFixed(3); got != "10.550" {
		t.Errorf("TotalGrossArea = %s, want 10.550", got)
	}
	if got := totals.TotalNetArea.StringFixed(3); got != "10.121" {
		t.Errorf("TotalNetArea = %s, want 10.121", got)
	}
}
