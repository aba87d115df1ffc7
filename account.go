package beanreport

import "strings"

// AccountType is one of the five fixed top-level account categories.
type AccountType string

const (
	Assets      AccountType = "Assets"
	Liabilities AccountType = "Liabilities"
	Equity      AccountType = "Equity"
	Income      AccountType = "Income"
	Expenses    AccountType = "Expenses"
)

// AccountTypes returns the five top-level account types in the fixed
// (alphabetical) order reports display them.
func AccountTypes() []AccountType {
	return []AccountType{Assets, Equity, Expenses, Income, Liabilities}
}

// Account is a hierarchical account identifier like "Assets:Cash:Wallet".
// The first colon-separated segment is the account's top-level type.
// Accounts are immutable; they are supplied by the ledger.
type Account string

// Type returns the account's top-level type, or a *MalformedLedgerDataError
// when the first segment is not one of the five known types.
func (a Account) Type() (AccountType, error) {
	root, _, _ := strings.Cut(string(a), ":")
	switch t := AccountType(root); t {
	case Assets, Liabilities, Equity, Income, Expenses:
		return t, nil
	}
	return "", &MalformedLedgerDataError{Account: a}
}
