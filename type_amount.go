package beanreport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is an exact decimal value tagged with a currency. The zero Amount
// has the weak "" currency, which merges with any other currency on Add.
type Amount struct {
	value decimal.Decimal
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

func (a Amount) Currency() string   { return a.cur }
func (a Amount) Quantity() Quantity { return Quantity{value: a.value} }
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value) && a.cur == b.cur
}
func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }
func (a Amount) Neg() Amount      { return Amount{value: a.value.Neg(), cur: a.cur} }

// Mul scales the amount by a unitless quantity, keeping the currency.
func (a Amount) Mul(q Quantity) Amount {
	return Amount{value: a.value.Mul(q.value), cur: a.cur}
}

// binary operators.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), cur: cur(a, b)}
}
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value), cur: cur(a, b)}
}

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// String renders the amount with two decimal places, thousands separators
// and the currency code as suffix, e.g. "-50.02 USD".
func (a Amount) String() string {
	f := money.NewFormatter(2, ".", ",", a.cur, "1 $")
	return f.Format(minorUnits(a.value))
}
