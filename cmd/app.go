// Package cmd implements the bean-report command-line dispatcher.
//
// The dispatcher is thin glue: it loads the ledger snapshot, resolves the
// requested report through the registry, and executes it as a subcommand.
// All report logic lives in the beanreport and renderer packages.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/ledgertools/beanreport"
)

const usage = "usage: bean-report <ledger-file> [<report-name> [report args...]]"

// NewRegistry builds the registry of all available reports. Registration is
// a one-time construction step: it happens before any resolution, and the
// registry is read-only afterwards.
func NewRegistry() (*beanreport.Registry, error) {
	return beanreport.NewRegistry(
		&holdingsReport{},
		&trialBalanceReport{},
	)
}

// Run dispatches one invocation: load the ledger snapshot, select a report
// through the registry, and render it to stdout.
//
// With a ledger file and no report name, Run prints the listing of
// available reports and succeeds. An unresolved report name is a
// user-visible error: the listing is shown and the exit status is non-zero.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) subcommands.ExitStatus {
	registry, err := NewRegistry()
	if err != nil {
		// Colliding report names: the process cannot start.
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		fmt.Fprint(stderr, registry.ListString())
		return subcommands.ExitUsageError
	}

	ledger, err := beanreport.DecodeLedgerFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(args) == 1 {
		fmt.Fprint(stdout, registry.ListString())
		return subcommands.ExitSuccess
	}

	name := args[1]
	report := registry.Resolve(name)
	if report == nil {
		fmt.Fprintf(stderr, "%v\n\n%s", &beanreport.UnknownReportError{Name: name}, registry.ListString())
		return subcommands.ExitUsageError
	}

	// Hand the resolved report to subcommands, which parses the
	// report-specific flags and runs it.
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	commander := subcommands.NewCommander(fs, "bean-report")
	commander.Register(&reportCmd{
		invoked: name,
		report:  report,
		ledger:  ledger,
		out:     stdout,
		errw:    stderr,
	}, "reports")

	if err := fs.Parse(args[1:]); err != nil {
		return subcommands.ExitUsageError
	}
	return commander.Execute(ctx)
}
