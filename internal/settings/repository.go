package settings

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Get returns the platform settings, falling back to defaults when no row has
// been written yet.
func (r *Repository) Get(ctx context.Context) (*Settings, error) {
	const q = `
SELECT commission_rate::text, updated_at
FROM platform_settings
WHERE id = 1
`
	var rate string
	s := &Settings{}
	err := r.db.QueryRow(ctx, q).Scan(&rate, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		return &Settings{CommissionRate: DefaultCommissionRate}, nil
	}
	if err != nil {
		return nil, err
	}
	s.CommissionRate = decimal.RequireFromString(rate)
	return s, nil
}

// Update writes the single settings row inside the caller's transaction.
func Update(ctx context.Context, tx pgx.Tx, rate decimal.Decimal) error {
	const q = `
INSERT INTO platform_settings (id, commission_rate)
VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET
  commission_rate = EXCLUDED.commission_rate,
  updated_at = NOW()
`
	_, err := tx.Exec(ctx, q, rate.StringFixed(2))
	return err
}
