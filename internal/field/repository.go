package field

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Field struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Name           string          `json:"name"`
	Sport          string          `json:"sport"`
	City           string          `json:"city"`
	PricePerHour   decimal.Decimal `json:"pricePerHour"`
	Currency       string          `json:"currency"`
	ApprovalStatus Status          `json:"approvalStatus"`
	IsActive       bool            `json:"isActive"`
	StatusReason   string          `json:"statusReason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type Snapshot struct {
	Status   Status `json:"status"`
	IsActive bool   `json:"isActive"`
	Reason   string `json:"reason,omitempty"`
}

func (f *Field) Snapshot() Snapshot {
	return Snapshot{Status: f.ApprovalStatus, IsActive: f.IsActive, Reason: f.StatusReason}
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const fieldColumns = `id, owner_id, name, sport, COALESCE(city,''), price_per_hour::text, currency, approval_status, is_active, COALESCE(status_reason,''), created_at, updated_at`

func scanField(row pgx.Row) (*Field, error) {
	var f Field
	var price string
	if err := row.Scan(
		&f.ID, &f.OwnerID, &f.Name, &f.Sport, &f.City, &price, &f.Currency,
		&f.ApprovalStatus, &f.IsActive, &f.StatusReason, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	f.PricePerHour = decimal.RequireFromString(price)
	return &f, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]Field, error) {
	q := `SELECT ` + fieldColumns + ` FROM fields`
	var args []any
	if status != "" {
		q += ` WHERE approval_status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Field
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Field, error) {
	const q = `SELECT ` + fieldColumns + ` FROM fields WHERE id = $1`
	return scanField(r.db.QueryRow(ctx, q, id))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Field, error) {
	const q = `SELECT ` + fieldColumns + ` FROM fields WHERE id = $1 FOR UPDATE`
	return scanField(tx.QueryRow(ctx, q, id))
}

// UpdateStatus writes the new approval status and recomputes is_active in the
// same statement so the two can never drift.
func UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status, reason string) error {
	const q = `
UPDATE fields
SET approval_status = $1, is_active = $2, status_reason = NULLIF($3, ''), updated_at = NOW()
WHERE id = $4
`
	_, err := tx.Exec(ctx, q, string(next), IsActive(next), reason, id)
	return err
}

func (r *Repository) Insert(ctx context.Context, ownerID, name, sport, city string, pricePerHour decimal.Decimal, currency string) (*Field, error) {
	const q = `
INSERT INTO fields (id, owner_id, name, sport, city, price_per_hour, currency, approval_status, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', FALSE)
RETURNING ` + fieldColumns
	return scanField(r.db.QueryRow(ctx, q, uuid.NewString(), ownerID, name, sport, city, pricePerHour.StringFixed(2), currency))
}
