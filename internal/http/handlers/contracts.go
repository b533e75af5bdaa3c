package handlers

import (
	"context"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/service/assignment"
	"truck-dispatch/internal/service/driver"
	"truck-dispatch/internal/service/load"
)

type driverUsecase interface {
	Create(ctx context.Context, name, licenseNumber string) (*domain.Driver, error)
	Get(ctx context.Context, id string) (*domain.Driver, error)
	UpdateStatus(ctx context.Context, id string, status domain.DriverStatus) (*domain.Driver, error)
}

// NewDriverUsecase wires a driver Service into a driverUsecase.
func NewDriverUsecase(svc *driver.Service) driverUsecase {
	return svc
}

type loadUsecase interface {
	Create(ctx context.Context, origin, destination, cargoType string) (*domain.Load, error)
	FindAll(ctx context.Context) ([]domain.Load, error)
	Get(ctx context.Context, id string) (*domain.Load, error)
	Update(ctx context.Context, id string, u domain.PartialLoadUpdate) (*domain.Load, error)
}

// NewLoadUsecase wires a load Service into a loadUsecase.
func NewLoadUsecase(svc *load.Service) loadUsecase {
	return svc
}

type assignmentUsecase interface {
	Create(ctx context.Context, driverID, loadID string) (*domain.Assignment, error)
	FindByID(ctx context.Context, id string) (*domain.Assignment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AssignmentStatus) (*domain.Assignment, error)
}

// NewAssignmentUsecase wires an assignment Service into an assignmentUsecase.
func NewAssignmentUsecase(svc *assignment.Service) assignmentUsecase {
	return svc
}
