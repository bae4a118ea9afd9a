package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sportlebanon/internal/booking"
	"sportlebanon/internal/owner"
)

const (
	bookingsSheet = "Bookings"
	ownersSheet   = "Owners"
)

// BuildBookingsWorkbook lays out the financial report: one row per booking
// with the commission split alongside the lifecycle status.
func BuildBookingsWorkbook(items []booking.Booking) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Field", "User", "Starts", "Ends", "Total", "Commission %", "Commission", "Owner payout", "Currency", "Status", "Payment"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(bookingsSheet, cell, header)
	}
	if style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(bookingsSheet, "A1", last, style)
	}

	for i, b := range items {
		row := i + 2
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("A%d", row), b.ID)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("B%d", row), b.FieldID)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("C%d", row), b.UserID)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("D%d", row), b.StartsAt.Format("02.01.2006 15:04"))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("E%d", row), b.EndsAt.Format("02.01.2006 15:04"))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("F%d", row), b.TotalPrice.StringFixed(2))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("G%d", row), b.CommissionRate.StringFixed(2))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("H%d", row), b.CommissionAmount.StringFixed(2))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("I%d", row), b.OwnerPayout.StringFixed(2))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("J%d", row), b.Currency)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("K%d", row), string(b.Status))
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("L%d", row), b.PaymentStatus)
	}

	_ = f.SetColWidth(bookingsSheet, "A", "C", 30)
	_ = f.SetColWidth(bookingsSheet, "D", "E", 18)
	_ = f.SetColWidth(bookingsSheet, "F", "L", 14)

	_ = f.DeleteSheet("Sheet1")
	return f, nil
}

func BuildOwnersWorkbook(items []owner.Owner) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(ownersSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Name", "Email", "Phone", "Business", "Status", "Reason", "Registered"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ownersSheet, cell, header)
	}
	if style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(ownersSheet, "A1", last, style)
	}

	for i, o := range items {
		row := i + 2
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("A%d", row), o.ID)
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("B%d", row), o.Name)
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("C%d", row), o.Email)
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("D%d", row), o.Phone)
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("E%d", row), o.BusinessName)
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("F%d", row), string(o.Status))
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("G%d", row), o.StatusReason)
		_ = f.SetCellValue(ownersSheet, fmt.Sprintf("H%d", row), o.CreatedAt.Format("02.01.2006 15:04"))
	}

	_ = f.SetColWidth(ownersSheet, "A", "A", 30)
	_ = f.SetColWidth(ownersSheet, "B", "E", 22)
	_ = f.SetColWidth(ownersSheet, "F", "H", 16)

	_ = f.DeleteSheet("Sheet1")
	return f, nil
}
