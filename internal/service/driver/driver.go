package driver

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"truck-dispatch/internal/apperr"
	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

const (
	minNameLen    = 2
	minLicenseLen = 5
)

var (
	errNotFound         = apperr.New(apperr.ErrNotFound, "driver not found")
	errInvalidID        = apperr.New(apperr.ErrInvalid, "invalid driver id")
	errInvalidName      = apperr.New(apperr.ErrInvalid, "name must be at least 2 characters")
	errInvalidLicense   = apperr.New(apperr.ErrInvalid, "license number must be at least 5 characters")
	errInvalidStatus    = apperr.New(apperr.ErrInvalidState, "invalid driver status")
	errLicenseDuplicate = apperr.New(apperr.ErrConflict, "license number already exists")
)

// Service coordinates driver business logic and orchestrates repository calls.
type Service struct {
	repo             driverRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() uuid.UUID
}

// NewService creates and configures a driver Service.
func NewService(r driverRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.New,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create registers an AVAILABLE driver. License numbers are unique.
func (s *Service) Create(ctx context.Context, name, license string) (*domain.Driver, error) {
	name = strings.TrimSpace(name)
	license = strings.TrimSpace(license)
	if utf8.RuneCountInString(name) < minNameLen {
		return nil, errInvalidName
	}
	if utf8.RuneCountInString(license) < minLicenseLen {
		return nil, errInvalidLicense
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.repo.GetByLicense(ctx, license)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errLicenseDuplicate
	}

	d := &domain.Driver{
		ID:            s.newID(),
		Name:          name,
		LicenseNumber: license,
		Status:        domain.DriverAvailable,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("driver created",
		logx.String("event", "driver_created"),
		logx.String("driver_id", d.ID.String()),
	)
	return d, nil
}

// Get retrieves a driver by its ID.
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Driver, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, errInvalidID
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errNotFound
	}
	return d, nil
}

// UpdateStatus is the administrative status change. It returns the refreshed driver.
func (s *Service) UpdateStatus(ctx context.Context, rawID string, status domain.DriverStatus) (*domain.Driver, error) {
	if !status.Valid() {
		return nil, errInvalidStatus
	}
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, errInvalidID
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errNotFound
	}

	// Assignment transitions also write driver status; an override here can
	// desync the driver from its ASSIGNED row. Surfaced, not prevented.
	active, err := s.repo.HasActiveAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if active && status != domain.DriverBusy {
		s.logger.Warn("driver status overridden during active assignment",
			logx.String("driver_id", id.String()),
			logx.String("from", string(current.Status)),
			logx.String("to", string(status)),
		)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errNotFound
	}
	return updated, nil
}
