package beanreport

import (
	"maps"
	"slices"
)

// TrialBalanceReport partitions the accounts into the five fixed top-level
// sections. The report always carries exactly five sections, in the fixed
// order Assets, Equity, Expenses, Income, Liabilities, even when a section
// holds no rows: the report's shape is always the same.
type TrialBalanceReport struct {
	Sections []TrialBalanceSection
}

// TrialBalanceSection groups the balance rows of one top-level account type.
type TrialBalanceSection struct {
	Type AccountType
	Rows []TrialBalanceRow
}

// TrialBalanceRow is one (account, currency) balance line. An account
// carrying several currencies yields one row per non-zero currency.
type TrialBalanceRow struct {
	Account Account
	Balance Amount
}

// NewTrialBalanceReport sums the signed posting amounts per account and
// currency and classifies each account into its top-level section by the
// first segment of its path. Zero balances are suppressed per
// (account, currency) line, not per account: an account whose every
// currency nets to zero shows no lines, but one non-zero currency is enough
// to keep that currency's line.
//
// An account outside the five known top-level types is a fatal
// *MalformedLedgerDataError: it indicates a malformed or unsupported
// ledger, not a normal empty case, and is never silently dropped.
func NewTrialBalanceReport(l *Ledger) (*TrialBalanceReport, error) {
	balances := make(map[Account]map[string]Amount)
	for p := range l.Postings() {
		byCurrency, ok := balances[p.Account]
		if !ok {
			byCurrency = make(map[string]Amount)
			balances[p.Account] = byCurrency
		}
		c := p.Amount.Currency()
		byCurrency[c] = byCurrency[c].Add(p.Amount)
	}

	report := &TrialBalanceReport{}
	sections := make(map[AccountType]*TrialBalanceSection)
	for _, t := range AccountTypes() {
		report.Sections = append(report.Sections, TrialBalanceSection{Type: t})
	}
	for i := range report.Sections {
		sections[report.Sections[i].Type] = &report.Sections[i]
	}

	// Accounts() is sorted, so rows land in account order within a section;
	// currencies are sorted within an account.
	for _, account := range l.Accounts() {
		t, err := account.Type()
		if err != nil {
			return nil, err
		}
		byCurrency := balances[account]
		for _, c := range slices.Sorted(maps.Keys(byCurrency)) {
			if byCurrency[c].IsZero() {
				continue
			}
			sections[t].Rows = append(sections[t].Rows, TrialBalanceRow{
				Account: account,
				Balance: byCurrency[c],
			})
		}
	}
	return report, nil
}
