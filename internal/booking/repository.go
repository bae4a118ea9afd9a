package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID               string          `json:"id"`
	FieldID          string          `json:"fieldId"`
	UserID           string          `json:"userId"`
	StartsAt         time.Time       `json:"startsAt"`
	EndsAt           time.Time       `json:"endsAt"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	Currency         string          `json:"currency"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	OwnerPayout      decimal.Decimal `json:"ownerPayout"`
	Status           Status          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	StatusReason     string          `json:"statusReason,omitempty"`
	Resolution       string          `json:"resolution,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type Snapshot struct {
	Status        Status `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	Reason        string `json:"reason,omitempty"`
	Resolution    string `json:"resolution,omitempty"`
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Reason:        b.StatusReason,
		Resolution:    b.Resolution,
	}
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `id, field_id, user_id, starts_at, ends_at, total_price::text, currency,
       commission_rate::text, commission_amount::text, owner_payout::text,
       status, payment_status, COALESCE(status_reason,''), COALESCE(resolution,''), created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var total, rate, commission, payout string
	if err := row.Scan(
		&b.ID, &b.FieldID, &b.UserID, &b.StartsAt, &b.EndsAt, &total, &b.Currency,
		&rate, &commission, &payout,
		&b.Status, &b.PaymentStatus, &b.StatusReason, &b.Resolution, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.TotalPrice = decimal.RequireFromString(total)
	b.CommissionRate = decimal.RequireFromString(rate)
	b.CommissionAmount = decimal.RequireFromString(commission)
	b.OwnerPayout = decimal.RequireFromString(payout)
	return &b, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any
	if status != "" {
		q += ` WHERE status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRow(ctx, q, id))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return scanBooking(tx.QueryRow(ctx, q, id))
}

func UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status, reason string) error {
	const q = `
UPDATE bookings
SET status = $1, status_reason = NULLIF($2, ''), updated_at = NOW()
WHERE id = $3
`
	_, err := tx.Exec(ctx, q, string(next), reason, id)
	return err
}

// Resolve records the dispute outcome and the resolution note together.
func Resolve(ctx context.Context, tx pgx.Tx, id string, outcome Status, resolution string) error {
	const q = `
UPDATE bookings
SET status = $1, resolution = $2, updated_at = NOW()
WHERE id = $3
`
	_, err := tx.Exec(ctx, q, string(outcome), resolution, id)
	return err
}

// SetCommission records the commission split captured at confirmation time.
func SetCommission(ctx context.Context, tx pgx.Tx, id string, rate, commission, payout decimal.Decimal) error {
	const q = `
UPDATE bookings
SET commission_rate = $1, commission_amount = $2, owner_payout = $3, updated_at = NOW()
WHERE id = $4
`
	_, err := tx.Exec(ctx, q, rate.StringFixed(2), commission.StringFixed(2), payout.StringFixed(2), id)
	return err
}

func (r *Repository) Insert(ctx context.Context, fieldID, userID string, startsAt, endsAt time.Time, totalPrice decimal.Decimal, currency string) (*Booking, error) {
	const q = `
INSERT INTO bookings (id, field_id, user_id, starts_at, ends_at, total_price, currency, status, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', 'unpaid')
RETURNING ` + bookingColumns
	return scanBooking(r.db.QueryRow(ctx, q, uuid.NewString(), fieldID, userID, startsAt, endsAt, totalPrice.StringFixed(2), currency))
}
