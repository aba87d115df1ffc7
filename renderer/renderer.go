// Package renderer turns report data structures into displayable text.
//
// Renderers are pure: they take a fully computed report and return a
// string, without touching the ledger or any output sink. Every report has
// a plain text form, laid out in aligned columns, and a markdown form built
// with nao1215/markdown.
package renderer

// columns holds the text column widths, computed over every row of a report
// so all sections align with each other.
type columns struct {
	account int
	value   int
}

func (c *columns) grow(account, value string) {
	c.account = max(c.account, len(account))
	c.value = max(c.value, len(value))
}
