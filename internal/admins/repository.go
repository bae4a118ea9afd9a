package admins

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	const q = `
SELECT id, email, COALESCE(name,''), password_hash, role, created_at
FROM admins
WHERE email = $1
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, email).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Admin, error) {
	const q = `
SELECT id, email, COALESCE(name,''), password_hash, role, created_at
FROM admins
WHERE id = $1
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

// Upsert creates or updates an admin account; used by the seed tool.
func (r *Repository) Upsert(ctx context.Context, email, name, passwordHash string, role Role) (*Admin, error) {
	const q = `
INSERT INTO admins (id, email, name, password_hash, role)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE SET
  name = EXCLUDED.name,
  password_hash = EXCLUDED.password_hash,
  role = EXCLUDED.role
RETURNING id, email, COALESCE(name,''), password_hash, role, created_at
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, uuid.NewString(), email, name, passwordHash, string(role)).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}
