package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"truck-dispatch/internal/apperr"
	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/ports/assignmenttx"
)

const assignmentWithRelations = `
    SELECT a.id, a.driver_id, a.load_id, a.status, a.assigned_at, a.completed_at,
           d.id, d.name, d.license_number, d.status, d.created_at,
           l.id, l.origin, l.destination, l.cargo_type, l.status, l.created_at
    FROM driver_load_assignments a
    JOIN drivers d ON d.id = a.driver_id
    JOIN loads l ON l.id = a.load_id
    WHERE a.id = $1`

// AssignmentRepo represents assignment repository.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// GetWithRelations returns the assignment with driver and load snapshots, or nil when absent.
func (r *AssignmentRepo) GetWithRelations(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx, assignmentWithRelations, id))
	if err != nil {
		return nil, fmt.Errorf("get assignment %s: %w", id, err)
	}
	return a, nil
}

// WithTx opens a READ COMMITTED transaction and executes fn within it.
// Store failures worth retrying come back wrapped with apperr.ErrTransient.
func (r *AssignmentRepo) WithTx(ctx context.Context, fn func(tx assignmenttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return classifyTxErr(fmt.Errorf("begin tx: %w", err))
	}

	// rollback uses a context that survives caller cancellation
	rbCtx := context.WithoutCancel(ctx)

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(rbCtx); rbErr != nil {
				panic(errors.Join(fmt.Errorf("panic: %v", p), rbErr))
			}
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(rbCtx); rbErr != nil {
			return classifyTxErr(fmt.Errorf("rollback tx: %w (original error: %w)", rbErr, err))
		}
		return classifyTxErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return classifyTxErr(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func classifyTxErr(err error) error {
	if apperr.Classified(err) || errors.Is(err, assignmenttx.ErrActiveAssignmentExists) ||
		errors.Is(err, assignmenttx.ErrAssignmentPairExists) {
		return err
	}
	if IsTransient(err) {
		return fmt.Errorf("%w: %w", apperr.ErrTransient, err)
	}
	return err
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetDriver - get driver by ID.
func (r *TxRepo) GetDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, err := scanDriver(r.tx.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get driver %s: %w", id, err)
	}
	return d, nil
}

// GetLoad - get load by ID.
func (r *TxRepo) GetLoad(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	l, err := scanLoad(r.tx.QueryRow(ctx, `SELECT `+loadColumns+` FROM loads WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get load %s: %w", id, err)
	}
	return l, nil
}

// HasActiveAssignment - check whether the driver holds an ASSIGNED row.
func (r *TxRepo) HasActiveAssignment(ctx context.Context, driverID uuid.UUID) (bool, error) {
	return hasActiveAssignment(ctx, r.tx, driverID)
}

// InsertAssignment - insert a new assignment.
func (r *TxRepo) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO driver_load_assignments (id, driver_id, load_id, status, assigned_at, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, a.ID, a.DriverID, a.LoadID, string(a.Status), a.AssignedAt, a.CompletedAt)
	if err != nil {
		switch violatedConstraint(err) {
		case constraintDriverActive:
			return assignmenttx.ErrActiveAssignmentExists
		case constraintDriverLoadUnique:
			return assignmenttx.ErrAssignmentPairExists
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetAssignment - get assignment with relations.
func (r *TxRepo) GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx, assignmentWithRelations, id))
	if err != nil {
		return nil, fmt.Errorf("get assignment %s: %w", id, err)
	}
	return a, nil
}

// GetAssignmentForUpdate - get assignment with relations and lock its row.
func (r *TxRepo) GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx, assignmentWithRelations+` FOR UPDATE OF a`, id))
	if err != nil {
		return nil, fmt.Errorf("lock assignment %s: %w", id, err)
	}
	return a, nil
}

// UpdateAssignmentStatus - update assignment status and completion time.
func (r *TxRepo) UpdateAssignmentStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.AssignmentStatus,
	completedAt *time.Time,
) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE driver_load_assignments
        SET status = $2, completed_at = $3
        WHERE id = $1
    `, id, string(status), completedAt)
	if err != nil {
		if violatedConstraint(err) == constraintDriverActive {
			return assignmenttx.ErrActiveAssignmentExists
		}
		return fmt.Errorf("update assignment status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %s not found", id)
	}
	return nil
}

// SetDriverStatus - compare-and-set driver status.
func (r *TxRepo) SetDriverStatus(
	ctx context.Context,
	id uuid.UUID,
	to domain.DriverStatus,
	from ...domain.DriverStatus,
) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE drivers SET status = $2
        WHERE id = $1 AND (cardinality($3::text[]) = 0 OR status = ANY($3::text[]))
    `, id, string(to), toStrings(from))
	if err != nil {
		return false, fmt.Errorf("set driver %s status %s: %w", id, to, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetLoadStatus - compare-and-set load status.
func (r *TxRepo) SetLoadStatus(
	ctx context.Context,
	id uuid.UUID,
	to domain.LoadStatus,
	from ...domain.LoadStatus,
) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE loads SET status = $2
        WHERE id = $1 AND (cardinality($3::text[]) = 0 OR status = ANY($3::text[]))
    `, id, string(to), toStrings(from))
	if err != nil {
		return false, fmt.Errorf("set load %s status %s: %w", id, to, err)
	}
	return ct.RowsAffected() > 0, nil
}

func toStrings[S ~string](in []S) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

// scanAssignment returns nil, nil when the row is missing.
func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		a domain.Assignment
		d domain.Driver
		l domain.Load
	)
	err := row.Scan(
		&a.ID, &a.DriverID, &a.LoadID, &a.Status, &a.AssignedAt, &a.CompletedAt,
		&d.ID, &d.Name, &d.LicenseNumber, &d.Status, &d.CreatedAt,
		&l.ID, &l.Origin, &l.Destination, &l.CargoType, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	a.AssignedAt = a.AssignedAt.UTC()
	if a.CompletedAt != nil {
		c := a.CompletedAt.UTC()
		a.CompletedAt = &c
	}
	d.CreatedAt = d.CreatedAt.UTC()
	l.CreatedAt = l.CreatedAt.UTC()
	a.Driver = &d
	a.Load = &l
	return &a, nil
}
