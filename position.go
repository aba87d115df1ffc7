package beanreport

import "iter"

// Position is a quantity of one currency, optionally held at a per-unit
// acquisition cost. The cost currency may differ from the position's own
// currency (e.g. 30 BOOG bought at 100 USD each).
type Position struct {
	Currency string
	Quantity Quantity
	Cost     *Amount // per unit, nil when the position carries no cost basis
}

// sameLot reports whether p and o belong to the same cost lot.
func (p Position) sameLot(o Position) bool {
	if p.Currency != o.Currency {
		return false
	}
	if (p.Cost == nil) != (o.Cost == nil) {
		return false
	}
	return p.Cost == nil || p.Cost.Equal(*o.Cost)
}

// Inventory is the multiset of positions held by one account at the end of
// the ledger. Positions of the same lot are merged on Add; lots that net to
// zero are kept, so reports can tell "held then sold" from "never held".
type Inventory struct {
	positions []Position
}

// Add merges p into the inventory.
func (inv *Inventory) Add(p Position) {
	for i := range inv.positions {
		if inv.positions[i].sameLot(p) {
			inv.positions[i].Quantity = inv.positions[i].Quantity.Add(p.Quantity)
			return
		}
	}
	inv.positions = append(inv.positions, p)
}

// Empty reports whether the inventory holds no positions at all.
func (inv *Inventory) Empty() bool {
	return inv == nil || len(inv.positions) == 0
}

// Positions iterates over the inventory's positions, in the order the lots
// were first seen. Callers get copies; the inventory is never mutated
// through iteration.
func (inv *Inventory) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if inv == nil {
			return
		}
		for _, p := range inv.positions {
			if !yield(p) {
				return
			}
		}
	}
}
