package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the platform-wide configuration row. There is exactly one.
type Settings struct {
	CommissionRate decimal.Decimal `json:"commissionRate"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// DefaultCommissionRate applies until a super admin sets one.
var DefaultCommissionRate = decimal.NewFromInt(10)

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ParseCommissionRate validates a client-supplied commission percentage.
// Accepted: 0–100 inclusive, at most two decimal places.
func ParseCommissionRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ValidationError{Code: "VALIDATION_FAILED", Message: "commission rate must be a decimal number"}
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, ValidationError{Code: "COMMISSION_RATE_INVALID", Message: "commission rate must be between 0 and 100"}
	}
	if rate.Exponent() < -2 {
		return decimal.Zero, ValidationError{Code: "COMMISSION_RATE_INVALID", Message: "commission rate allows at most two decimal places"}
	}
	return rate, nil
}
