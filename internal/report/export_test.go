package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sportlebanon/internal/booking"
)

func TestBuildBookingsWorkbook(t *testing.T) {
	starts := time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC)
	items := []booking.Booking{
		{
			ID:               "bk-1",
			FieldID:          "fld-1",
			UserID:           "usr-1",
			StartsAt:         starts,
			EndsAt:           starts.Add(time.Hour),
			TotalPrice:       decimal.RequireFromString("35.00"),
			Currency:         "USD",
			CommissionRate:   decimal.RequireFromString("10.00"),
			CommissionAmount: decimal.RequireFromString("3.50"),
			OwnerPayout:      decimal.RequireFromString("31.50"),
			Status:           booking.StatusConfirmed,
			PaymentStatus:    "paid",
		},
	}

	f, err := BuildBookingsWorkbook(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := f.GetCellValue("Bookings", "A1")
	if err != nil || got != "ID" {
		t.Fatalf("expected header ID in A1, got %q (%v)", got, err)
	}
	got, err = f.GetCellValue("Bookings", "H2")
	if err != nil || got != "3.50" {
		t.Fatalf("expected commission 3.50 in H2, got %q (%v)", got, err)
	}
	got, err = f.GetCellValue("Bookings", "K2")
	if err != nil || got != "confirmed" {
		t.Fatalf("expected status confirmed in K2, got %q (%v)", got, err)
	}
}
