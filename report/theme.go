package report

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a #RRGGBB string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// UnmarshalYAML decodes a color from a #RRGGBB (or RRGGBB) string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHexColor parses a #RRGGBB or RRGGBB string.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Theme carries the visual choices of a rendered report: company identity
// and the color and font palette. The structural contract of the report
// (row order, spans, which cells are bold) is fixed; the theme only decides
// how that structure looks.
type Theme struct {
	CompanyName string `yaml:"company_name"`
	AddressLine string `yaml:"address_line"`

	TitleFont string `yaml:"title_font"` // serif face for the company name
	BodyFont  string `yaml:"body_font"`  // sans face for everything else

	Accent    Color `yaml:"accent"`     // divider rule, group header text, totals band
	Ink       Color `yaml:"ink"`        // primary text, top header band
	Muted     Color `yaml:"muted"`      // labels, sub header band
	PanelBG   Color `yaml:"panel_bg"`   // metadata grid fill
	GridLine  Color `yaml:"grid_line"`  // table and grid borders
	ZebraEven Color `yaml:"zebra_even"` // striping for even data rows
	ZebraOdd  Color `yaml:"zebra_odd"`  // striping for odd data rows
}

// DefaultTheme returns the stock gold-on-black house style.
// Both zebra colors are defined; striping falls back to a plain white
// table only if a loaded theme sets them equal.
func DefaultTheme() Theme {
	return Theme{
		CompanyName: "RUVELLO GLOBAL LLP",
		AddressLine: "Luxury Granite & Quartzite Exporters | www.ruvelloglobal.com",
		TitleFont:   "Times",
		BodyFont:    "Helvetica",
		Accent:      Color{R: 0xD4, G: 0xAF, B: 0x37},
		Ink:         Color{R: 0x00, G: 0x00, B: 0x00},
		Muted:       Color{R: 0x30, G: 0x30, B: 0x30},
		PanelBG:     Color{R: 0xFA, G: 0xFA, B: 0xFA},
		GridLine:    Color{R: 0xD3, G: 0xD3, B: 0xD3},
		ZebraEven:   Color{R: 0xFF, G: 0xFF, B: 0xFF},
		ZebraOdd:    Color{R: 0xFA, G: 0xFA, B: 0xFA},
	}
}

// LoadTheme reads a YAML theme over the defaults: fields absent from the
// document keep their default values.
func LoadTheme(r io.Reader) (Theme, error) {
	theme := DefaultTheme()
	data, err := io.ReadAll(r)
	if err != nil {
		return theme, fmt.Errorf("reading theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return theme, fmt.Errorf("parsing theme: %w", err)
	}
	return theme, nil
}

// LoadThemeFile reads a YAML theme file over the defaults.
func LoadThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("opening theme %s: %w", path, err)
	}
	defer f.Close()
	return LoadTheme(f)
}
