package assignmenttx

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"truck-dispatch/internal/domain"
)

// ErrActiveAssignmentExists is returned when the driver already holds an ASSIGNED row.
var ErrActiveAssignmentExists = errors.New("driver already has an active assignment")

// ErrAssignmentPairExists is returned when the driver-load pair was assigned before.
var ErrAssignmentPairExists = errors.New("driver-load pair already assigned")

// Repository is the set of store operations available inside an assignment transaction.
// Getters return nil, nil when the row does not exist.
type Repository interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	GetLoad(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	HasActiveAssignment(ctx context.Context, driverID uuid.UUID) (bool, error)
	InsertAssignment(ctx context.Context, a *domain.Assignment) error
	GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus, completedAt *time.Time) error
	// SetDriverStatus changes the driver status when its current status is one of from
	// (any status when from is empty) and reports whether a row was changed.
	SetDriverStatus(ctx context.Context, id uuid.UUID, to domain.DriverStatus, from ...domain.DriverStatus) (bool, error)
	// SetLoadStatus mirrors SetDriverStatus for loads.
	SetLoadStatus(ctx context.Context, id uuid.UUID, to domain.LoadStatus, from ...domain.LoadStatus) (bool, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
