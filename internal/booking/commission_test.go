package booking

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitRevenue(t *testing.T) {
	total := decimal.RequireFromString("100.00")
	rate := decimal.RequireFromString("12.50")

	commission, payout, err := SplitRevenue(total, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commission.StringFixed(2) != "12.50" {
		t.Fatalf("expected commission 12.50, got %s", commission)
	}
	if payout.StringFixed(2) != "87.50" {
		t.Fatalf("expected payout 87.50, got %s", payout)
	}
}

func TestSplitRevenue_RoundingDeltaGoesToPayout(t *testing.T) {
	total := decimal.RequireFromString("33.33")
	rate := decimal.RequireFromString("10")

	commission, payout, err := SplitRevenue(total, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3.333 rounds to 3.33; the payout absorbs the delta.
	if commission.StringFixed(2) != "3.33" {
		t.Fatalf("expected commission 3.33, got %s", commission)
	}
	if !commission.Add(payout).Equal(total) {
		t.Fatalf("expected parts to sum to %s, got %s", total, commission.Add(payout))
	}
}

func TestSplitRevenue_Bounds(t *testing.T) {
	if _, _, err := SplitRevenue(decimal.Zero, decimal.NewFromInt(10)); err == nil {
		t.Fatalf("expected zero total to fail")
	}
	if _, _, err := SplitRevenue(decimal.NewFromInt(100), decimal.NewFromInt(101)); err == nil {
		t.Fatalf("expected rate above 100 to fail")
	}
	if _, _, err := SplitRevenue(decimal.NewFromInt(100), decimal.NewFromInt(-1)); err == nil {
		t.Fatalf("expected negative rate to fail")
	}
}

func TestSplitRevenue_FullRange(t *testing.T) {
	total := decimal.RequireFromString("50.00")

	commission, payout, err := SplitRevenue(total, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !commission.IsZero() || !payout.Equal(total) {
		t.Fatalf("expected zero commission at 0%%, got %s / %s", commission, payout)
	}

	commission, payout, err = SplitRevenue(total, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !commission.Equal(total) || !payout.IsZero() {
		t.Fatalf("expected full commission at 100%%, got %s / %s", commission, payout)
	}
}
