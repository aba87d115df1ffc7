package beanreport

import "fmt"

// DuplicateReportError is returned when a report is registered under a
// canonical name or alias already taken by another report. It is fatal at
// startup: the process cannot run with colliding report names.
type DuplicateReportError struct {
	Name string
}

func (e *DuplicateReportError) Error() string {
	return fmt.Sprintf("report name %q is already registered", e.Name)
}

// UnknownReportError is the dispatcher-level error for a report name the
// registry does not resolve. The registry itself treats a miss as a normal
// outcome and returns nil; only the dispatcher turns it into an error.
type UnknownReportError struct {
	Name string
}

func (e *UnknownReportError) Error() string {
	return fmt.Sprintf("unknown report %q", e.Name)
}

// MalformedLedgerDataError reports an account whose first path segment is
// not one of the five known top-level account types.
type MalformedLedgerDataError struct {
	Account Account
}

func (e *MalformedLedgerDataError) Error() string {
	return fmt.Sprintf("account %q is not under a known top-level type (Assets, Liabilities, Equity, Income, Expenses)", e.Account)
}
