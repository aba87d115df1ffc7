package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledgertools/beanreport"
	md "github.com/nao1215/markdown"
)

// TrialBalanceText renders the trial balance with its five sections in
// fixed order. A section with rows is represented by its account lines (the
// section name is the first segment of every account path); a section with
// no rows prints its bare name:
//
//	Assets:Cash         -50.02 USD
//	Equity
//	Expenses:Restaurant  50.02 USD
//	Income
//	Liabilities
func TrialBalanceText(r *beanreport.TrialBalanceReport) string {
	var cols columns
	for _, s := range r.Sections {
		for _, row := range s.Rows {
			cols.grow(string(row.Account), row.Balance.Quantity().Display())
		}
	}

	var b strings.Builder
	for _, s := range r.Sections {
		if len(s.Rows) == 0 {
			fmt.Fprintf(&b, "%s\n", s.Type)
			continue
		}
		for _, row := range s.Rows {
			fmt.Fprintf(&b, "%-*s %*s %s\n",
				cols.account, row.Account,
				cols.value, row.Balance.Quantity().Display(),
				row.Balance.Currency())
		}
	}
	return b.String()
}

// TrialBalanceMarkdown renders the trial balance as one markdown section
// per account type.
func TrialBalanceMarkdown(r *beanreport.TrialBalanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trial Balance")
	for _, s := range r.Sections {
		doc.H2(string(s.Type))
		if len(s.Rows) == 0 {
			doc.PlainText("No balances.")
			continue
		}
		rows := make([][]string, 0, len(s.Rows))
		for _, row := range s.Rows {
			rows = append(rows, []string{
				string(row.Account),
				row.Balance.Quantity().Display(),
				row.Balance.Currency(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Account", "Balance", "Currency"},
			Rows:   rows,
		})
	}
	return doc.String()
}
