//go:generate mockgen -source=contracts.go -destination=driver_mocks_test.go -package=driver_test

package driver

import (
	"context"

	"github.com/google/uuid"

	"truck-dispatch/internal/domain"
)

// driverRepository defines storage operations required by the driver lifecycle.
// Getters return nil, nil when the driver does not exist.
type driverRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	GetByLicense(ctx context.Context, license string) (*domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) (*domain.Driver, error)
	HasActiveAssignment(ctx context.Context, id uuid.UUID) (bool, error)
}
