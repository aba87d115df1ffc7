package beanreport

import (
	"errors"
	"testing"
)

func TestAccount_Type(t *testing.T) {
	cases := []struct {
		account Account
		want    AccountType
	}{
		{"Assets:Cash", Assets},
		{"Assets:US:BofA:Checking", Assets},
		{"Liabilities:CreditCard", Liabilities},
		{"Equity:Opening-Balances", Equity},
		{"Income:Salary", Income},
		{"Expenses:Restaurant", Expenses},
		{"Equity", Equity},
	}
	for _, c := range cases {
		got, err := c.account.Type()
		if err != nil {
			t.Errorf("Account(%q).Type() error = %v", c.account, err)
			continue
		}
		if got != c.want {
			t.Errorf("Account(%q).Type() = %v, want %v", c.account, got, c.want)
		}
	}
}

func TestAccount_Type_malformed(t *testing.T) {
	for _, account := range []Account{"Banana:Split", "assets:Cash", ""} {
		_, err := account.Type()
		if err == nil {
			t.Errorf("Account(%q).Type() expected an error", account)
			continue
		}
		var malformed *MalformedLedgerDataError
		if !errors.As(err, &malformed) {
			t.Errorf("Account(%q).Type() error = %T, want *MalformedLedgerDataError", account, err)
		} else if malformed.Account != account {
			t.Errorf("MalformedLedgerDataError.Account = %q, want %q", malformed.Account, account)
		}
	}
}

func TestAccountTypes_order(t *testing.T) {
	want := []AccountType{Assets, Equity, Expenses, Income, Liabilities}
	got := AccountTypes()
	if len(got) != len(want) {
		t.Fatalf("AccountTypes() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AccountTypes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
