package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ruvello/slabsheet"
	"github.com/ruvello/slabsheet/pdfout"
	"github.com/ruvello/slabsheet/report"
)

var genFlags struct {
	material  string
	invoice   string
	date      string
	thickness string
	container string
	mine      string
	allowance string
	swap      bool

	input   string
	lengths string
	heights string
	sheet   string

	logo      string
	signature string
	theme     string
	out       string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PDF inspection report",
	Long: `Generate parses the measurement input, applies the allowance rule,
and writes a paginated PDF inspection report.

By default the report is written to the working directory as
Measurement_<material>_<invoice>.pdf.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.material, "material", "", "material name (required)")
	f.StringVar(&genFlags.invoice, "invoice", "", "invoice / reference number (required)")
	f.StringVar(&genFlags.date, "date", time.Now().Format("2006-01-02"), "inspection date (YYYY-MM-DD)")
	f.StringVar(&genFlags.thickness, "thickness", "", "slab thickness, e.g. 16MM")
	f.StringVar(&genFlags.container, "container", "", "container number")
	f.StringVar(&genFlags.mine, "mine", "", "mine / block name")
	f.StringVar(&genFlags.allowance, "allowance", "", `allowance rule text, e.g. "-5 x 4"`)
	f.BoolVar(&genFlags.swap, "swap-allowance", false, "reverse the allowance orientation")

	f.StringVarP(&genFlags.input, "input", "i", "", "measurement input file, or - for stdin")
	f.StringVar(&genFlags.lengths, "lengths", "", "file with gross lengths, one per line (with --heights)")
	f.StringVar(&genFlags.heights, "heights", "", "file with gross heights, one per line (with --lengths)")
	f.StringVar(&genFlags.sheet, "sheet", "", "worksheet name for workbook input (default first sheet)")

	f.StringVar(&genFlags.logo, "logo", "", "company logo image")
	f.StringVar(&genFlags.signature, "signature", "", "signature scan image")
	f.StringVar(&genFlags.theme, "theme", "", "YAML theme file")
	f.StringVarP(&genFlags.out, "out", "o", "", "output path (default derived from material and invoice)")

	generateCmd.MarkFlagRequired("material")
	generateCmd.MarkFlagRequired("invoice")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	date, err := time.Parse("2006-01-02", genFlags.date)
	if err != nil {
		return fmt.Errorf("invalid --date %q: %w", genFlags.date, err)
	}
	meta := report.Metadata{
		Material:      genFlags.material,
		InvoiceNo:     genFlags.invoice,
		Date:          date,
		Thickness:     genFlags.thickness,
		ContainerNo:   genFlags.container,
		Mine:          genFlags.mine,
		AllowanceText: genFlags.allowance,
	}

	b := slabsheet.New(meta)
	if genFlags.theme != "" {
		theme, err := report.LoadThemeFile(genFlags.theme)
		if err != nil {
			return err
		}
		b.Theme(theme)
	}
	if genFlags.swap {
		b.SwapAllowance()
	}
	if genFlags.sheet != "" {
		b.Sheet(genFlags.sheet)
	}
	if err := feedInput(b, genFlags.input, genFlags.lengths, genFlags.heights); err != nil {
		return err
	}
	if genFlags.logo != "" {
		b.Logo(genFlags.logo)
	}
	if genFlags.signature != "" {
		b.SignatureImage(genFlags.signature)
	}

	doc, warnings, err := b.Document()
	for _, w := range warnings {
		logger.Warn("asset skipped", zap.String("stage", w.Stage), zap.String("reason", w.Message))
	}
	if err != nil {
		return err
	}

	out := genFlags.out
	if out == "" {
		out = report.FileName(meta)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()
	if err := pdfout.Render(doc, f); err != nil {
		return err
	}

	logger.Info("report written",
		zap.String("path", out),
		zap.Int("slabs", doc.Totals.SlabCount))

	p := message.NewPrinter(language.English)
	p.Printf("Generated sheet for %d slabs: %s\n", doc.Totals.SlabCount, out)
	p.Printf("  Total gross area: %s m2\n", doc.Totals.TotalGrossArea.StringFixed(3))
	p.Printf("  Total net area:   %s m2\n", doc.Totals.TotalNetArea.StringFixed(3))
	return nil
}
