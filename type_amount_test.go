package beanreport

import "testing"

func TestAmount_String(t *testing.T) {
	cases := []struct {
		amount Amount
		want   string
	}{
		{USD(1000), "1,000.00 USD"},
		{USD(-50.02), "-50.02 USD"},
		{BOOG(30), "30.00 BOOG"},
		{EUR(800), "800.00 EUR"},
		{USD(1234567.891), "1,234,567.89 USD"},
		{USD(0), "0.00 USD"},
	}
	for _, c := range cases {
		if got := c.amount.String(); got != c.want {
			t.Errorf("Amount.String() = %q, want %q", got, c.want)
		}
	}
}

func TestAmount_Add_weakCurrency(t *testing.T) {
	// The zero Amount has no currency and must merge with any other.
	var sum Amount
	sum = sum.Add(USD(5000))
	sum = sum.Add(USD(-3000))
	if got := sum.Currency(); got != "USD" {
		t.Errorf("Currency() = %q, want USD", got)
	}
	if !sum.Equal(USD(2000)) {
		t.Errorf("sum = %v, want 2,000.00 USD", sum)
	}
}

func TestAmount_Add_mismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR should panic")
		}
	}()
	_ = USD(1).Add(EUR(1))
}

func TestAmount_Mul(t *testing.T) {
	// 30 units at 100 USD each weigh 3,000 USD.
	got := USD(100).Mul(Q(30))
	if !got.Equal(USD(3000)) {
		t.Errorf("Mul = %v, want 3,000.00 USD", got)
	}
}

func TestQuantity_Display(t *testing.T) {
	cases := []struct {
		quantity Quantity
		want     string
	}{
		{Q(1000), "1,000.00"},
		{Q(30), "30.00"},
		{Q(-50.02), "-50.02"},
		{Q(0), "0.00"},
		{Q(1234567.894), "1,234,567.89"},
		{Q(1234567.895), "1,234,567.90"},
	}
	for _, c := range cases {
		if got := c.quantity.Display(); got != c.want {
			t.Errorf("Quantity.Display() = %q, want %q", got, c.want)
		}
	}
}

func TestQuantity_exactSummation(t *testing.T) {
	// 0.1 added ten times is exactly 1 in decimal arithmetic.
	var sum Quantity
	for range 10 {
		sum = sum.Add(Q(0.1))
	}
	if !sum.Equal(Q(1)) {
		t.Errorf("sum = %v, want 1", sum)
	}
}
