package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/ledgertools/beanreport"
)

// reportCmd adapts a beanreport.Report to the subcommands.Command
// interface, under the name it was invoked by (canonical or alias).
type reportCmd struct {
	invoked string
	report  beanreport.Report
	ledger  *beanreport.Ledger
	out     io.Writer
	errw    io.Writer
}

func (c *reportCmd) Name() string     { return c.invoked }
func (c *reportCmd) Synopsis() string { return c.report.Synopsis() }
func (c *reportCmd) Usage() string {
	return fmt.Sprintf("bean-report <ledger-file> %s [report args...]\n\n  %s\n", c.invoked, c.report.Synopsis())
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.report.Render(c.ledger, c.out); err != nil {
		fmt.Fprintf(c.errw, "Error rendering report %q: %v\n", c.invoked, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
