package owner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Owner struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	BusinessName string    `json:"businessName,omitempty"`
	Status       Status    `json:"status"`
	StatusReason string    `json:"statusReason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Snapshot is the status-bearing view recorded in the activity ledger.
// It is a value copy, never a reference into the live row.
type Snapshot struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func (o *Owner) Snapshot() Snapshot {
	return Snapshot{Status: o.Status, Reason: o.StatusReason}
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const ownerColumns = `id, name, email, COALESCE(phone,''), COALESCE(business_name,''), status, COALESCE(status_reason,''), created_at, updated_at`

func scanOwner(row pgx.Row) (*Owner, error) {
	var o Owner
	if err := row.Scan(
		&o.ID, &o.Name, &o.Email, &o.Phone, &o.BusinessName, &o.Status, &o.StatusReason,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]Owner, error) {
	q := `SELECT ` + ownerColumns + ` FROM owners`
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

	var out []Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Owner, error) {
	const q = `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1`
	return scanOwner(r.db.QueryRow(ctx, q, id))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Owner, error) {
	const q = `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1 FOR UPDATE`
	return scanOwner(tx.QueryRow(ctx, q, id))
}

func UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status, reason string) error {
	const q = `
UPDATE owners
SET status = $1, status_reason = NULLIF($2, ''), updated_at = NOW()
WHERE id = $3
`
	_, err := tx.Exec(ctx, q, string(next), reason, id)
	return err
}

// Insert is used by registration flows and the dev seed tool; moderation never
// creates owners.
func (r *Repository) Insert(ctx context.Context, name, email, phone, businessName string) (*Owner, error) {
	const q = `
INSERT INTO owners (id, name, email, phone, business_name, status)
VALUES ($1, $2, $3, $4, $5, 'pending_review')
RETURNING ` + ownerColumns
	return scanOwner(r.db.QueryRow(ctx, q, uuid.NewString(), name, email, phone, businessName))
}
