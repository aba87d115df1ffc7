package beanreport

import "slices"

// HoldingsReport lists, per account, the summed quantity held in each
// currency at the end of the ledger. Cost lots of the same currency are
// collapsed: the cost basis is not a grouping key for this report.
type HoldingsReport struct {
	Rows []HoldingRow
}

// HoldingRow is one (account, currency) line of the holdings report.
type HoldingRow struct {
	Account  Account
	Quantity Quantity
	Currency string
}

// NewHoldingsReport reduces every non-empty account inventory into one row
// per (account, currency) pair, sorted by account path then currency. The
// rows are a partition of each inventory by currency: every position lands
// in exactly one row. Currency groups that net to zero are still listed;
// accounts with an entirely empty inventory contribute no rows.
func NewHoldingsReport(l *Ledger) *HoldingsReport {
	report := &HoldingsReport{}
	for _, account := range l.Accounts() {
		inv := l.Inventory(account)
		if inv.Empty() {
			continue
		}

		sums := make(map[string]Quantity)
		var currencies []string
		for p := range inv.Positions() {
			if _, seen := sums[p.Currency]; !seen {
				currencies = append(currencies, p.Currency)
			}
			sums[p.Currency] = sums[p.Currency].Add(p.Quantity)
		}

		slices.Sort(currencies)
		for _, c := range currencies {
			report.Rows = append(report.Rows, HoldingRow{
				Account:  account,
				Quantity: sums[c],
				Currency: c,
			})
		}
	}
	return report
}
