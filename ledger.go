package beanreport

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// Posting assigns a signed amount of one currency to an account within a
// transaction.
type Posting struct {
	Account Account
	Amount  Amount
	Cost    *Amount // per-unit acquisition cost, nil for plain cash postings
	Price   *Amount // per-unit conversion price, informational
}

// Transaction is a dated set of postings. Postings are trusted to balance;
// the ledger does not re-validate them.
type Transaction struct {
	Date      time.Time
	Narration string
	Postings  []Posting
}

// Ledger is a fully materialized ledger snapshot: the accounts known, the
// transactions recorded, and the closing inventory of every account.
//
// A Ledger is append-only while it is being built and read-only afterwards;
// reports never mutate it.
type Ledger struct {
	transactions []Transaction
	inventories  map[Account]*Inventory
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{inventories: make(map[Account]*Inventory)}
}

// Open declares an account, giving it an empty inventory until postings
// arrive. Opening an already known account does nothing.
func (l *Ledger) Open(a Account) {
	l.inventory(a)
}

// Append records transactions and folds their postings into the closing
// inventories.
func (l *Ledger) Append(txs ...Transaction) {
	for _, tx := range txs {
		l.transactions = append(l.transactions, tx)
		for _, p := range tx.Postings {
			l.inventory(p.Account).Add(Position{
				Currency: p.Amount.Currency(),
				Quantity: p.Amount.Quantity(),
				Cost:     p.Cost,
			})
		}
	}
}

func (l *Ledger) inventory(a Account) *Inventory {
	inv, ok := l.inventories[a]
	if !ok {
		inv = &Inventory{}
		l.inventories[a] = inv
	}
	return inv
}

// Accounts returns every known account, opened or posted to, sorted by
// account path.
func (l *Ledger) Accounts() []Account {
	accounts := slices.Collect(maps.Keys(l.inventories))
	slices.Sort(accounts)
	return accounts
}

// Inventory returns the closing inventory of an account, or nil when the
// account is unknown.
func (l *Ledger) Inventory(a Account) *Inventory {
	return l.inventories[a]
}

// Postings iterates over every posting of every transaction, in recording
// order.
func (l *Ledger) Postings() iter.Seq[Posting] {
	return func(yield func(Posting) bool) {
		for _, tx := range l.transactions {
			for _, p := range tx.Postings {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Transactions iterates over the recorded transactions in order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Empty reports whether the ledger holds no directives at all.
func (l *Ledger) Empty() bool {
	return len(l.transactions) == 0 && len(l.inventories) == 0
}
