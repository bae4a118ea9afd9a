package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is one entry in the append-only moderation ledger. Entries are never
// updated or deleted; there is deliberately no code path that mutates this
// table after insert.
type Record struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actorId"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Action     string          `json:"action"`
	Before     json.RawMessage `json:"before"`
	After      json.RawMessage `json:"after"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert appends one ledger entry inside the caller's transaction, so the
// status write and its audit record commit or roll back together.
func Insert(ctx context.Context, tx pgx.Tx, actorID, entityType, entityID, action string, before, after any) error {
	b, err := json.Marshal(before)
	if err != nil {
		return err
	}
	a, err := json.Marshal(after)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO activity_logs (actor_id, entity_type, entity_id, action, before_state, after_state)
VALUES ($1, $2, $3, $4, CAST($5 AS jsonb), CAST($6 AS jsonb))
`
	_, err = tx.Exec(ctx, q, actorID, entityType, entityID, action, string(b), string(a))
	return err
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// List returns ledger entries newest-first. page starts at 1.
func (r *Repository) List(ctx context.Context, entityType string, page, limit int) ([]Record, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	q := `
SELECT id, actor_id, entity_type, entity_id, action, before_state, after_state, created_at
FROM activity_logs
`
	args := []any{limit, (page - 1) * limit}
	if entityType != "" {
		q += `WHERE entity_type = $3
`
		args = append(args, entityType)
	}
	q += `ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.ActorID, &rec.EntityType, &rec.EntityID, &rec.Action,
			&rec.Before, &rec.After, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
