package settings

import "testing"

func TestParseCommissionRate(t *testing.T) {
	got, err := ParseCommissionRate("12.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "12.50" {
		t.Fatalf("expected 12.50, got %s", got)
	}
}

func TestParseCommissionRate_Bounds(t *testing.T) {
	if _, err := ParseCommissionRate("-1"); err == nil {
		t.Fatalf("expected negative rate to fail")
	}
	if _, err := ParseCommissionRate("100.01"); err == nil {
		t.Fatalf("expected rate above 100 to fail")
	}
	if _, err := ParseCommissionRate("0"); err != nil {
		t.Fatalf("expected 0 to be valid, got %v", err)
	}
	if _, err := ParseCommissionRate("100"); err != nil {
		t.Fatalf("expected 100 to be valid, got %v", err)
	}
}

func TestParseCommissionRate_Scale(t *testing.T) {
	if _, err := ParseCommissionRate("9.999"); err == nil {
		t.Fatalf("expected three decimal places to fail")
	}
}

func TestParseCommissionRate_NotANumber(t *testing.T) {
	if _, err := ParseCommissionRate("ten"); err == nil {
		t.Fatalf("expected parse failure")
	}
}
