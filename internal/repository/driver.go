package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"truck-dispatch/internal/apperr"
	"truck-dispatch/internal/domain"
)

const driverColumns = `id, name, license_number, status, created_at`

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Get - returns driver by its ID.
func (r *DriverRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get driver %s: %w", id, err)
	}
	return d, nil
}

// GetByLicense - returns driver by its license number.
func (r *DriverRepo) GetByLicense(ctx context.Context, license string) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE license_number = $1`, license))
	if err != nil {
		return nil, fmt.Errorf("get driver by license: %w", err)
	}
	return d, nil
}

// Create - creates a new driver.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO drivers(id, name, license_number, status, created_at) VALUES($1, $2, $3, $4, $5)`,
		d.ID, d.Name, d.LicenseNumber, string(d.Status), d.CreatedAt)
	if err != nil {
		if violatedConstraint(err) == constraintLicenseUnique {
			return apperr.New(apperr.ErrConflict, "license number already exists")
		}
		return fmt.Errorf("create driver: %w", err)
	}
	return nil
}

// UpdateStatus sets the driver status and returns the refreshed row, or nil when absent.
func (r *DriverRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `
        UPDATE drivers SET status = $2
        WHERE id = $1
        RETURNING `+driverColumns, id, string(status)))
	if err != nil {
		return nil, fmt.Errorf("update driver status %s: %w", id, err)
	}
	return d, nil
}

// HasActiveAssignment reports whether the driver holds an ASSIGNED assignment.
func (r *DriverRepo) HasActiveAssignment(ctx context.Context, id uuid.UUID) (bool, error) {
	return hasActiveAssignment(ctx, r.db, id)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func hasActiveAssignment(ctx context.Context, q querier, driverID uuid.UUID) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM driver_load_assignments
            WHERE driver_id = $1 AND status = $2
        )`, driverID, string(domain.AssignmentAssigned)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active assignment for driver %s: %w", driverID, err)
	}
	return exists, nil
}

// scanDriver returns nil, nil when the row is missing.
func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	if err := row.Scan(&d.ID, &d.Name, &d.LicenseNumber, &d.Status, &d.CreatedAt); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}
