package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/ledgertools/beanreport"
	"github.com/ledgertools/beanreport/renderer"
)

// holdingsReport is the holdings (positions) report: one row per account
// and currency, cost lots collapsed.
type holdingsReport struct {
	format string
}

func (*holdingsReport) Name() string      { return "holdings" }
func (*holdingsReport) Aliases() []string { return []string{"positions"} }
func (*holdingsReport) Synopsis() string {
	return "print the final position of every account, grouped by currency"
}

func (r *holdingsReport) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.format, "format", "text", "output format (text, markdown)")
}

func (r *holdingsReport) Render(l *beanreport.Ledger, w io.Writer) error {
	report := beanreport.NewHoldingsReport(l)
	switch r.format {
	case "", "text":
		_, err := io.WriteString(w, renderer.HoldingsText(report))
		return err
	case "markdown", "md":
		_, err := io.WriteString(w, renderer.HoldingsMarkdown(report))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or markdown)", r.format)
	}
}
