package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Currency
// ---------------------------------------------------------------------------

func TestNewCurrency_Valid(t *testing.T) {
	for _, code := range []string{"RUB", "USD", "EUR", "JPY", "CHF"} {
		c, err := NewCurrency(code)
		if err != nil {
			t.Errorf("NewCurrency(%q) unexpected error: %v", code, err)
		}
		if c.Code() != code {
			t.Errorf("NewCurrency(%q).Code() = %q, want %q", code, c.Code(), code)
		}
	}
}

func TestNewCurrency_Invalid(t *testing.T) {
	for _, code := range []string{"", "rub", "Rub", "RU", "RUBL", "R1B", "R B"} {
		if _, err := NewCurrency(code); err == nil {
			t.Errorf("NewCurrency(%q) expected error, got nil", code)
		}
	}
}

func TestCurrency_Exponent(t *testing.T) {
	if got := RUB.Exponent(); got != 2 {
		t.Errorf("RUB.Exponent() = %d, want 2", got)
	}
	if got := MustCurrency("JPY").Exponent(); got != 0 {
		t.Errorf("JPY.Exponent() = %d, want 0", got)
	}
}

// ---------------------------------------------------------------------------
// Money
// ---------------------------------------------------------------------------

func TestNewFromMinorUnits(t *testing.T) {
	m := NewFromMinorUnits(123456, RUB)
	if m.String() != "1234.56 RUB" {
		t.Errorf("NewFromMinorUnits(123456, RUB) = %s, want 1234.56 RUB", m)
	}
	if m.MinorUnits() != 123456 {
		t.Errorf("MinorUnits() = %d, want 123456", m.MinorUnits())
	}
}

func TestNewFromString_RejectsGarbage(t *testing.T) {
	for _, amount := range []string{"", "abc", "NaN", "Inf", "-Inf", "1..2"} {
		if _, err := NewFromString(amount, "RUB"); err == nil {
			t.Errorf("NewFromString(%q) expected error, got nil", amount)
		}
	}
}

func TestRoundMinor_HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"1.015", "1.02"},
		{"99.999", "100.00"},
	}
	for _, tt := range tests {
		m, err := NewFromString(tt.in, "RUB")
		if err != nil {
			t.Fatalf("NewFromString(%q): %v", tt.in, err)
		}
		got := m.RoundMinor().Amount().StringFixed(2)
		if got != tt.want {
			t.Errorf("RoundMinor(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestAdd_CurrencyMismatch(t *testing.T) {
	rub := NewFromMinorUnits(100, RUB)
	usd := NewFromMinorUnits(100, USD)

	if _, err := rub.Add(usd); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add across currencies: got %v, want ErrCurrencyMismatch", err)
	}
	if _, err := rub.Subtract(usd); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Subtract across currencies: got %v, want ErrCurrencyMismatch", err)
	}
	if _, err := rub.Compare(usd); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Compare across currencies: got %v, want ErrCurrencyMismatch", err)
	}
}

func TestAddSubtract_RoundTrip(t *testing.T) {
	a := NewFromMinorUnits(150075, RUB)
	b := NewFromMinorUnits(49925, RUB)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.MinorUnits() != 200000 {
		t.Errorf("sum = %d minor units, want 200000", sum.MinorUnits())
	}

	back, err := sum.Subtract(b)
	if err != nil {
		t.Fatalf("Subtract: %v", err)
	}
	if !back.Equal(a) {
		t.Errorf("round trip: got %s, want %s", back, a)
	}
}

func TestConvert_ExplicitRate(t *testing.T) {
	m := NewFromMinorUnits(10000, USD) // 100.00 USD
	rate := decimal.RequireFromString("92.5")

	got, err := Convert(m, rate, RUB)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got.Currency() != RUB {
		t.Errorf("Convert currency = %s, want RUB", got.Currency())
	}
	if got.RoundMinor().Amount().StringFixed(2) != "9250.00" {
		t.Errorf("Convert amount = %s, want 9250.00", got.Amount())
	}

	if _, err := Convert(m, decimal.Zero, RUB); err == nil {
		t.Error("Convert with zero rate: expected error, got nil")
	}
}
