package beanreport

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Directive discriminators of the JSONL ledger format.
const (
	dirOpen        = "open"
	dirTransaction = "transaction"
)

const dateLayout = "2006-01-02"

// postingLine is a specialized struct to decode one posting of a
// transaction directive. Amount, cost and price are pointers so "absent"
// and "zero" stay distinct.
type postingLine struct {
	Account       Account          `json:"account"`
	Amount        *decimal.Decimal `json:"amount"`
	Currency      string           `json:"currency"`
	Cost          *decimal.Decimal `json:"cost"`
	CostCurrency  string           `json:"costCurrency"`
	Price         *decimal.Decimal `json:"price"`
	PriceCurrency string           `json:"priceCurrency"`
}

// DecodeLedger reads a stream of JSONL directives and returns the resulting
// ledger snapshot. Any malformed line aborts the decoding; the caller gets
// the error verbatim, there is no repair attempt.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Directive string `json:"directive"`
		}
		if err := json.Unmarshal(data, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify directive in %q: %w", line, string(data), err)
		}

		switch identifier.Directive {
		case dirOpen:
			var temp struct {
				Date    string  `json:"date"`
				Account Account `json:"account"`
			}
			if err := json.Unmarshal(data, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if temp.Account == "" {
				return nil, fmt.Errorf("line %d: open directive without account", line)
			}
			if _, err := time.Parse(dateLayout, temp.Date); err != nil {
				return nil, fmt.Errorf("line %d: invalid date %q: %w", line, temp.Date, err)
			}
			ledger.Open(temp.Account)

		case dirTransaction:
			var temp struct {
				Date      string        `json:"date"`
				Narration string        `json:"narration"`
				Postings  []postingLine `json:"postings"`
			}
			if err := json.Unmarshal(data, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			tx, err := buildTransaction(temp.Date, temp.Narration, temp.Postings)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ledger.Append(tx)

		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", line, identifier.Directive)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// DecodeLedgerFile opens and decodes a JSONL ledger file.
func DecodeLedgerFile(name string) (*Ledger, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ledger, nil
}

// buildTransaction converts decoded posting lines into a Transaction,
// interpolating at most one elided posting from the residual of the others.
func buildTransaction(date, narration string, lines []postingLine) (Transaction, error) {
	when, err := time.Parse(dateLayout, date)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	tx := Transaction{Date: when, Narration: narration}
	residual := make(map[string]Amount)
	elided := Account("")

	for _, pl := range lines {
		if pl.Account == "" {
			return Transaction{}, fmt.Errorf("posting without account")
		}
		if pl.Amount == nil {
			if elided != "" {
				return Transaction{}, fmt.Errorf("more than one posting without amount")
			}
			elided = pl.Account
			continue
		}
		if pl.Currency == "" {
			return Transaction{}, fmt.Errorf("posting on %s has an amount but no currency", pl.Account)
		}

		p := Posting{Account: pl.Account, Amount: M(*pl.Amount, pl.Currency)}
		if pl.Cost != nil {
			c := M(*pl.Cost, orDefault(pl.CostCurrency, pl.Currency))
			p.Cost = &c
		}
		if pl.Price != nil {
			c := M(*pl.Price, orDefault(pl.PriceCurrency, pl.Currency))
			p.Price = &c
		}

		w := weight(p)
		residual[w.Currency()] = residual[w.Currency()].Add(w)
		tx.Postings = append(tx.Postings, p)
	}

	if elided != "" {
		for _, c := range slices.Sorted(maps.Keys(residual)) {
			if residual[c].IsZero() {
				continue
			}
			tx.Postings = append(tx.Postings, Posting{Account: elided, Amount: residual[c].Neg()})
		}
	}
	return tx, nil
}

// weight is the value a posting contributes to its transaction's balance:
// quantity times per-unit cost when a cost is attached, times price when a
// price is attached, the amount itself otherwise.
func weight(p Posting) Amount {
	switch {
	case p.Cost != nil:
		return p.Cost.Mul(p.Amount.Quantity())
	case p.Price != nil:
		return p.Price.Mul(p.Amount.Quantity())
	default:
		return p.Amount
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
