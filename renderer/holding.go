package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledgertools/beanreport"
	md "github.com/nao1215/markdown"
)

// HoldingsText renders the holdings report as aligned text, one line per
// (account, currency) row:
//
//	Assets:Account1      1,000.00 USD
//	Assets:Account2         30.00 BOOG
func HoldingsText(r *beanreport.HoldingsReport) string {
	var cols columns
	for _, row := range r.Rows {
		cols.grow(string(row.Account), row.Quantity.Display())
	}

	var b strings.Builder
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%-*s %*s %s\n",
			cols.account, row.Account,
			cols.value, row.Quantity.Display(),
			row.Currency)
	}
	return b.String()
}

// HoldingsMarkdown renders the holdings report as a markdown table.
func HoldingsMarkdown(r *beanreport.HoldingsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{string(row.Account), row.Quantity.Display(), row.Currency})
	}
	doc.Table(md.TableSet{
		Header: []string{"Account", "Quantity", "Currency"},
		Rows:   rows,
	})
	return doc.String()
}
