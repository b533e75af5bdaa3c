package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"truck-dispatch/internal/domain"
)

const loadColumns = `id, origin, destination, cargo_type, status, created_at`

// LoadRepo represents load repository.
type LoadRepo struct{ db *pgxpool.Pool }

// NewLoadRepo creates a new LoadRepo.
func NewLoadRepo(db *pgxpool.Pool) *LoadRepo { return &LoadRepo{db: db} }

// Get - returns load by its ID.
func (r *LoadRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	l, err := scanLoad(r.db.QueryRow(ctx, `SELECT `+loadColumns+` FROM loads WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get load %s: %w", id, err)
	}
	return l, nil
}

// List returns all loads, newest first.
func (r *LoadRepo) List(ctx context.Context) ([]domain.Load, error) {
	rows, err := r.db.Query(ctx, `SELECT `+loadColumns+` FROM loads ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Load, 0)
	for rows.Next() {
		var l domain.Load
		if err := rows.Scan(&l.ID, &l.Origin, &l.Destination, &l.CargoType, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan load: %w", err)
		}
		l.CreatedAt = l.CreatedAt.UTC()
		out = append(out, l)
	}
	return out, rows.Err()
}

// Create - creates a new load.
func (r *LoadRepo) Create(ctx context.Context, l *domain.Load) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO loads(id, origin, destination, cargo_type, status, created_at) VALUES($1, $2, $3, $4, $5, $6)`,
		l.ID, l.Origin, l.Destination, l.CargoType, string(l.Status), l.CreatedAt)
	if err != nil {
		return fmt.Errorf("create load: %w", err)
	}
	return nil
}

// UpdatePartial applies a partial update and returns the refreshed row, or nil when absent.
func (r *LoadRepo) UpdatePartial(ctx context.Context, u domain.PartialLoadUpdate) (*domain.Load, error) {
	var status *string
	if u.Status != nil {
		s := string(*u.Status)
		status = &s
	}
	l, err := scanLoad(r.db.QueryRow(ctx, `
        UPDATE loads
        SET
            origin      = COALESCE($2, origin),
            destination = COALESCE($3, destination),
            cargo_type  = COALESCE($4, cargo_type),
            status      = COALESCE($5, status)
        WHERE id = $1
        RETURNING `+loadColumns, u.ID, u.Origin, u.Destination, u.CargoType, status))
	if err != nil {
		return nil, fmt.Errorf("update load %s: %w", u.ID, err)
	}
	return l, nil
}

// scanLoad returns nil, nil when the row is missing.
func scanLoad(row pgx.Row) (*domain.Load, error) {
	var l domain.Load
	if err := row.Scan(&l.ID, &l.Origin, &l.Destination, &l.CargoType, &l.Status, &l.CreatedAt); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return &l, nil
}
