package money

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned by arithmetic between two Money values of
// different currencies. Cross-currency math must go through Convert with an
// explicitly supplied rate.
var ErrCurrencyMismatch = errors.New("currency mismatch")

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// zeroExponentCurrencies lists ISO 4217 currencies whose minor unit is the
// whole unit.
var zeroExponentCurrencies = map[string]struct{}{
	"JPY": {},
	"KRW": {},
	"VND": {},
}

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level
// variable initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// Exponent returns the number of minor-unit decimal places for the currency
// (2 for most currencies, 0 for JPY and friends).
func (c Currency) Exponent() int32 {
	if _, ok := zeroExponentCurrencies[c.code]; ok {
		return 0
	}
	return 2
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// Common currencies.
var (
	RUB = MustCurrency("RUB")
	USD = MustCurrency("USD")
	EUR = MustCurrency("EUR")
)

// Money represents an immutable monetary amount with currency.
// The amount is an exact decimal; binary floating point never enters the
// representation. Intermediate results may carry more precision than the
// currency's minor unit; RoundMinor applies half-up rounding as the final
// operation.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money value from a decimal amount and currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// NewFromString parses an amount string and currency code into a Money value.
// NaN and infinities are unrepresentable: the decimal parser rejects them.
func NewFromString(amount string, currency string) (Money, error) {
	cur, err := NewCurrency(currency)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency: %w", err)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	return Money{amount: d, currency: cur}, nil
}

// NewFromMinorUnits creates a Money value from an integer count of minor units,
// e.g. NewFromMinorUnits(123456, RUB) is 1234.56 RUB.
func NewFromMinorUnits(units int64, currency Currency) Money {
	return Money{amount: decimal.New(units, -currency.Exponent()), currency: currency}
}

// Zero returns a Money value of zero in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// MinorUnits returns the amount rounded to the currency's minor unit,
// expressed as an integer count of minor units.
func (m Money) MinorUnits() int64 {
	return m.RoundMinor().amount.Shift(m.currency.Exponent()).IntPart()
}

// RoundMinor rounds the amount half-up to the currency's minor unit.
func (m Money) RoundMinor() Money {
	return Money{amount: m.amount.Round(m.currency.Exponent()), currency: m.currency}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of m and other. Returns ErrCurrencyMismatch if the
// currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of m minus other. Returns ErrCurrencyMismatch
// if the currencies differ.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// MustAdd is Add for callers that have already checked the currencies match.
// It panics on mismatch; reaching the panic is a programming error.
func (m Money) MustAdd(other Money) Money {
	sum, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return sum
}

// MustSubtract is Subtract for callers that have already checked the
// currencies match.
func (m Money) MustSubtract(other Money) Money {
	diff, err := m.Subtract(other)
	if err != nil {
		panic(err)
	}
	return diff
}

// Multiply returns m multiplied by the given factor. The result is not
// rounded; callers round once at the end of a computation chain.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Negate returns m with the sign of the amount flipped.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Compare returns -1, 0 or 1 when m is less than, equal to or greater than
// other. Returns ErrCurrencyMismatch if the currencies differ.
func (m Money) Compare(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, fmt.Errorf("%w: cannot compare %s with %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return m.amount.Cmp(other.amount), nil
}

// Equal returns true if both the amount and currency of m and other are equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Convert applies an explicit exchange rate to produce an amount in the target
// currency. The rate is the price of one unit of m's currency in the target
// currency; it is always passed in by the caller, never looked up ambiently.
func Convert(m Money, rate decimal.Decimal, target Currency) (Money, error) {
	if !rate.IsPositive() {
		return Money{}, fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	return Money{amount: m.amount.Mul(rate), currency: target}, nil
}

// String formats the Money value as "<amount> <currency>", for example
// "1234.56 RUB".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(m.currency.Exponent()), m.currency.Code())
}
