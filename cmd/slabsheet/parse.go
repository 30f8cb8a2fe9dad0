package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ruvello/slabsheet"
	"github.com/ruvello/slabsheet/report"
)

var parseFlags struct {
	allowance string
	swap      bool
	input     string
	lengths   string
	heights   string
	sheet     string
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse measurements and show the computed records",
	Long: `Parse reads the measurement input, applies the allowance rule, and
prints the computed records and totals without generating a PDF. Use it
to check a paste before committing it to a report.`,
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.StringVar(&parseFlags.allowance, "allowance", "", `allowance rule text, e.g. "-5 x 4"`)
	f.BoolVar(&parseFlags.swap, "swap-allowance", false, "reverse the allowance orientation")
	f.StringVarP(&parseFlags.input, "input", "i", "", "measurement input file, or - for stdin")
	f.StringVar(&parseFlags.lengths, "lengths", "", "file with gross lengths, one per line (with --heights)")
	f.StringVar(&parseFlags.heights, "heights", "", "file with gross heights, one per line (with --lengths)")
	f.StringVar(&parseFlags.sheet, "sheet", "", "worksheet name for workbook input (default first sheet)")
}

func runParse(cmd *cobra.Command, args []string) error {
	b := slabsheet.New(report.Metadata{AllowanceText: parseFlags.allowance})
	if parseFlags.swap {
		b.SwapAllowance()
	}
	if parseFlags.sheet != "" {
		b.Sheet(parseFlags.sheet)
	}
	if err := feedInput(b, parseFlags.input, parseFlags.lengths, parseFlags.heights); err != nil {
		return err
	}

	doc, _, err := b.Document()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "S.NO\tSLAB NO\tGROSS L\tGROSS H\tGROSS AREA\tNET L\tNET H\tNET AREA")
	for _, row := range doc.Table.Rows {
		texts := make([]string, len(row))
		for i, c := range row {
			texts[i] = c.Text
		}
		fmt.Fprintln(w, strings.Join(texts, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("\nTotal slabs: %d\n", doc.Totals.SlabCount)
	p.Printf("Total gross area: %s m2\n", doc.Totals.TotalGrossArea.StringFixed(3))
	p.Printf("Total net area:   %s m2\n", doc.Totals.TotalNetArea.StringFixed(3))
	return nil
}
