package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewRateFromString(t *testing.T) {
	r, err := NewRateFromString("12.5")
	if err != nil {
		t.Fatalf("NewRateFromString: %v", err)
	}
	if !r.Fraction().Equal(decimal.RequireFromString("0.125")) {
		t.Errorf("Fraction() = %s, want 0.125", r.Fraction())
	}
	if r.BasisPoints() != 1250 {
		t.Errorf("BasisPoints() = %d, want 1250", r.BasisPoints())
	}
}

func TestNewRate_RejectsNegative(t *testing.T) {
	if _, err := NewRateFromString("-1"); err == nil {
		t.Error("negative rate accepted")
	}
}

func TestRate_Monthly(t *testing.T) {
	r, err := NewRateFromString("12")
	if err != nil {
		t.Fatalf("NewRateFromString: %v", err)
	}
	// 12% p.a. is exactly 1% per month.
	if !r.Monthly().Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("Monthly() = %s, want 0.01", r.Monthly())
	}
}

func TestRate_PerPeriods_CarriesPrecision(t *testing.T) {
	r, err := NewRateFromString("20")
	if err != nil {
		t.Fatalf("NewRateFromString: %v", err)
	}
	// 20%/12 is non-terminating; the division must not truncate early.
	monthly := r.Monthly()
	diff := monthly.Mul(decimal.NewFromInt(12)).Sub(r.Fraction()).Abs()
	if diff.GreaterThan(decimal.New(1, -15)) {
		t.Errorf("monthly*12 drifted from annual by %s", diff)
	}
}

func TestRateFromBasisPoints(t *testing.T) {
	r, err := NewRateFromBasisPoints(1995)
	if err != nil {
		t.Fatalf("NewRateFromBasisPoints: %v", err)
	}
	if r.String() != "19.95%" {
		t.Errorf("String() = %s, want 19.95%%", r)
	}
}
