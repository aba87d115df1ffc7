package renderer

import (
	"strings"
	"testing"

	"github.com/ledgertools/beanreport"
)

func transfersLedger() *beanreport.Ledger {
	ledger := beanreport.NewLedger()
	cost := beanreport.M(100, "USD")
	price := beanreport.M(1.25, "USD")
	ledger.Append(
		beanreport.Transaction{Postings: []beanreport.Posting{
			{Account: "Equity:Unknown", Amount: beanreport.M(-5000, "USD")},
			{Account: "Assets:Account1", Amount: beanreport.M(5000, "USD")},
		}},
		beanreport.Transaction{Postings: []beanreport.Posting{
			{Account: "Assets:Account1", Amount: beanreport.M(-3000, "USD")},
			{Account: "Assets:Account2", Amount: beanreport.M(30, "BOOG"), Cost: &cost},
		}},
		beanreport.Transaction{Postings: []beanreport.Posting{
			{Account: "Assets:Account1", Amount: beanreport.M(-1000, "USD")},
			{Account: "Assets:Account3", Amount: beanreport.M(800, "EUR"), Price: &price},
		}},
	)
	return ledger
}

func TestHoldingsText(t *testing.T) {
	got := HoldingsText(beanreport.NewHoldingsReport(transfersLedger()))

	assertLines(t, `
		Assets:Account1  1,000.00 USD
		Assets:Account2     30.00 BOOG
		Assets:Account3    800.00 EUR
		Equity:Unknown  -5,000.00 USD
	`, got)
}

func TestHoldingsText_emptyLedger(t *testing.T) {
	if got := HoldingsText(beanreport.NewHoldingsReport(beanreport.NewLedger())); got != "" {
		t.Errorf("HoldingsText(empty) = %q, want empty", got)
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	got := HoldingsMarkdown(beanreport.NewHoldingsReport(transfersLedger()))
	for _, want := range []string{"# Holdings", "Assets:Account1", "1,000.00", "BOOG"} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingsMarkdown() missing %q:\n%s", want, got)
		}
	}
}
