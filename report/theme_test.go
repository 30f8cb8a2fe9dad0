package report

import (
	"strings"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#D4AF37", Color{0xD4, 0xAF, 0x37}, false},
		{"d4af37", Color{0xD4, 0xAF, 0x37}, false},
		{"#000000", Color{}, false},
		{"", Color{}, true},
		{"#FFF", Color{}, true},
		{"#GGGGGG", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHexColor(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultThemeZebraColorsDefined(t *testing.T) {
	theme := DefaultTheme()
	if theme.ZebraEven == theme.ZebraOdd {
		t.Error("zebra colors must differ for striping to show")
	}
	if theme.CompanyName == "" || theme.AddressLine == "" {
		t.Error("default theme must carry the company identity")
	}
}

func TestLoadThemeOverridesDefaults(t *testing.T) {
	src := `
company_name: GRANITE HOUSE
accent: "#FF0000"
zebra_odd: "EEEEEE"
`
	theme, err := LoadTheme(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.CompanyName != "GRANITE HOUSE" {
		t.Errorf("CompanyName = %q", theme.CompanyName)
	}
	if theme.Accent != (Color{0xFF, 0, 0}) {
		t.Errorf("Accent = %v, want red", theme.Accent)
	}
	if theme.ZebraOdd != (Color{0xEE, 0xEE, 0xEE}) {
		t.Errorf("ZebraOdd = %v", theme.ZebraOdd)
	}
	// Untouched fields keep their defaults.
	if theme.BodyFont != "Helvetica" {
		t.Errorf("BodyFont = %q, want default Helvetica", theme.BodyFont)
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("accent: notacolor"))
	if err == nil {
		t.Fatal("invalid color must fail to load")
	}
}
