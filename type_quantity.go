package beanreport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an exact decimal number of units of a currency or commodity.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity {
	return Quantity{value: q.value.Add(p.value)}
}
func (q Quantity) Sub(p Quantity) Quantity {
	return Quantity{value: q.value.Sub(p.value)}
}
func (q Quantity) Neg() Quantity    { return Quantity{value: q.value.Neg()} }
func (q Quantity) IsZero() bool     { return q.value.IsZero() }
func (q Quantity) IsNegative() bool { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool { return q.value.IsPositive() }
func (q Quantity) String() string   { return q.value.String() }

// quantityFormatter renders plain decimal values with two fraction digits
// and thousands separators, without any currency grapheme.
var quantityFormatter = money.NewFormatter(2, ".", ",", "", "1")

// Display renders the quantity rounded to exactly two decimal places with
// thousands separators, e.g. "1,000.00".
func (q Quantity) Display() string {
	return quantityFormatter.Format(minorUnits(q.value))
}

// minorUnits converts v to an integer count of hundredths, rounding half
// away from zero.
func minorUnits(v decimal.Decimal) int64 {
	return v.Round(2).Shift(2).IntPart()
}

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
