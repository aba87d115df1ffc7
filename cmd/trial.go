package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/ledgertools/beanreport"
	"github.com/ledgertools/beanreport/renderer"
)

// trialBalanceReport is the trial balance: per-account balances rolled up
// into the five fixed top-level sections.
type trialBalanceReport struct {
	format string
}

func (*trialBalanceReport) Name() string      { return "balances" }
func (*trialBalanceReport) Aliases() []string { return []string{"bal", "trial"} }
func (*trialBalanceReport) Synopsis() string {
	return "print the trial balance of all accounts in the five standard sections"
}

func (r *trialBalanceReport) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.format, "format", "text", "output format (text, markdown)")
}

func (r *trialBalanceReport) Render(l *beanreport.Ledger, w io.Writer) error {
	report, err := beanreport.NewTrialBalanceReport(l)
	if err != nil {
		return err
	}
	switch r.format {
	case "", "text":
		_, err := io.WriteString(w, renderer.TrialBalanceText(report))
		return err
	case "markdown", "md":
		_, err := io.WriteString(w, renderer.TrialBalanceMarkdown(report))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or markdown)", r.format)
	}
}
