package assignment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"truck-dispatch/internal/apperr"
	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
	"truck-dispatch/internal/ports/assignmenttx"
)

var (
	errDriverNotFound     = apperr.New(apperr.ErrNotFound, "driver not found")
	errLoadNotFound       = apperr.New(apperr.ErrNotFound, "load not found")
	errAssignmentNotFound = apperr.New(apperr.ErrNotFound, "assignment not found")
	errDriverUnavailable  = apperr.New(apperr.ErrInvalidState, "driver is not available for assignment")
	errDriverActive       = apperr.New(apperr.ErrInvalidState, "driver already has an active load assignment")
	errLoadUnavailable    = apperr.New(apperr.ErrInvalidState, "load is not available for assignment")
	errInvalidStatus      = apperr.New(apperr.ErrInvalidState, "invalid assignment status")
	errPairExists         = apperr.New(apperr.ErrConflict, "driver already assigned to this load")
	errInvalidDriverID    = apperr.New(apperr.ErrInvalid, "invalid driver id")
	errInvalidLoadID      = apperr.New(apperr.ErrInvalid, "invalid load id")
	errInvalidID          = apperr.New(apperr.ErrInvalid, "invalid assignment id")
)

// Config bounds the transactional and post-commit phases.
type Config struct {
	TxTimeout         time.Duration
	SideEffectTimeout time.Duration
}

// Metrics are optional counters; nil fields are skipped.
type Metrics struct {
	Transitions        *prometheus.CounterVec
	SideEffectFailures *prometheus.CounterVec
}

// Service manages the driver-load assignment lifecycle.
type Service struct {
	repo      assignmentRepository
	loads     cacheInvalidator
	publisher eventPublisher
	cfg       Config
	metrics   Metrics
	logger    logx.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

// NewService creates an assignment Service. loads and publisher may be nil.
func NewService(
	r assignmentRepository,
	loads cacheInvalidator,
	publisher eventPublisher,
	cfg Config,
	m Metrics,
	logger logx.Logger,
) *Service {
	if cfg.TxTimeout <= 0 {
		cfg.TxTimeout = 5 * time.Second
	}
	if cfg.SideEffectTimeout <= 0 {
		cfg.SideEffectTimeout = 2 * time.Second
	}
	return &Service{
		repo:      r,
		loads:     loads,
		publisher: publisher,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.New,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.TxTimeout)
}

// Create assigns an available driver to a pending load.
func (s *Service) Create(ctx context.Context, rawDriverID, rawLoadID string) (*domain.Assignment, error) {
	driverID, err := parseID(rawDriverID, errInvalidDriverID)
	if err != nil {
		return nil, err
	}
	loadID, err := parseID(rawLoadID, errInvalidLoadID)
	if err != nil {
		return nil, err
	}

	txCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result *domain.Assignment
	err = s.repo.WithTx(txCtx, func(tx assignmenttx.Repository) error {
		d, err := tx.GetDriver(txCtx, driverID)
		if err != nil {
			return err
		}
		if d == nil {
			return errDriverNotFound
		}
		if d.Status != domain.DriverAvailable {
			return errDriverUnavailable
		}

		active, err := tx.HasActiveAssignment(txCtx, driverID)
		if err != nil {
			return err
		}
		if active {
			return errDriverActive
		}

		l, err := tx.GetLoad(txCtx, loadID)
		if err != nil {
			return err
		}
		if l == nil {
			return errLoadNotFound
		}
		if l.Status != domain.LoadPending {
			return errLoadUnavailable
		}

		a := &domain.Assignment{
			ID:         s.newID(),
			DriverID:   driverID,
			LoadID:     loadID,
			Status:     domain.AssignmentAssigned,
			AssignedAt: s.now(),
		}
		if err := tx.InsertAssignment(txCtx, a); err != nil {
			return err
		}

		ok, err := tx.SetDriverStatus(txCtx, driverID, domain.DriverBusy, domain.DriverAvailable)
		if err != nil {
			return err
		}
		if !ok {
			return errDriverUnavailable
		}

		ok, err = tx.SetLoadStatus(txCtx, loadID, domain.LoadAssigned, domain.LoadPending)
		if err != nil {
			return err
		}
		if !ok {
			return errLoadUnavailable
		}

		d.Status = domain.DriverBusy
		l.Status = domain.LoadAssigned
		a.Driver, a.Load = d, l
		result = a
		return nil
	})
	if err != nil {
		return nil, translateTxErr(err)
	}

	s.observe(result.Status)
	s.logger.Info("load assigned",
		logx.String("event", "load_assigned"),
		logx.String("assignment_id", result.ID.String()),
		logx.String("driver_id", driverID.String()),
		logx.String("load_id", loadID.String()),
	)

	s.runHooks(ctx, result.ID.String(), s.invalidateHook(), hook{
		effect: effectPublishEvent,
		run: func(ctx context.Context) error {
			if s.publisher == nil {
				return nil
			}
			// stamped at publish time, after the commit and cache invalidation
			return s.publisher.PublishAssignment(ctx, domain.AssignmentEvent{
				Type:       domain.EventLoadAssigned,
				OccurredAt: s.now(),
				Assignment: *result,
			})
		},
	})

	return result, nil
}

// UpdateStatus moves an assignment to the given status and applies its driver and load effects.
func (s *Service) UpdateStatus(ctx context.Context, rawID string, status domain.AssignmentStatus) (*domain.Assignment, error) {
	if !status.Valid() {
		return nil, errInvalidStatus
	}
	id, err := parseID(rawID, errInvalidID)
	if err != nil {
		return nil, err
	}

	txCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result *domain.Assignment
	err = s.repo.WithTx(txCtx, func(tx assignmenttx.Repository) error {
		a, err := tx.GetAssignmentForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return errAssignmentNotFound
		}

		var completedAt *time.Time
		if status.Terminal() {
			now := s.now()
			completedAt = &now
		}
		if err := tx.UpdateAssignmentStatus(txCtx, id, status, completedAt); err != nil {
			return err
		}

		if driverTo, loadTo, ok := status.Release(); ok {
			if _, err := tx.SetDriverStatus(txCtx, a.DriverID, driverTo); err != nil {
				return err
			}
			if _, err := tx.SetLoadStatus(txCtx, a.LoadID, loadTo); err != nil {
				return err
			}
		}

		result, err = tx.GetAssignment(txCtx, id)
		if err != nil {
			return err
		}
		if result == nil {
			return errAssignmentNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translateTxErr(err)
	}

	s.observe(status)
	s.logger.Info("assignment status updated",
		logx.String("event", "assignment_status_updated"),
		logx.String("assignment_id", id.String()),
		logx.String("status", string(status)),
	)

	s.runHooks(ctx, id.String(), s.invalidateHook())
	return result, nil
}

// FindByID returns the assignment with driver and load snapshots.
func (s *Service) FindByID(ctx context.Context, rawID string) (*domain.Assignment, error) {
	id, err := parseID(rawID, errInvalidID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errAssignmentNotFound
	}
	return a, nil
}

func (s *Service) invalidateHook() hook {
	return hook{
		effect: effectInvalidateCache,
		run: func(ctx context.Context) error {
			if s.loads == nil {
				return nil
			}
			return s.loads.InvalidateCache(ctx)
		},
	}
}

func (s *Service) observe(status domain.AssignmentStatus) {
	if s.metrics.Transitions != nil {
		s.metrics.Transitions.WithLabelValues(string(status)).Inc()
	}
}

func translateTxErr(err error) error {
	switch {
	case errors.Is(err, assignmenttx.ErrActiveAssignmentExists):
		return errDriverActive
	case errors.Is(err, assignmenttx.ErrAssignmentPairExists):
		return errPairExists
	default:
		return err
	}
}

func parseID(raw string, invalid error) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, invalid
	}
	return id, nil
}
