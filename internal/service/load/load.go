package load

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"truck-dispatch/internal/apperr"
	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

// CacheKeyAll is the cache key of the full load listing.
const CacheKeyAll = "loads:all"

// DefaultCacheTTL is used when no TTL is configured.
const DefaultCacheTTL = 60 * time.Second

// invalidateTimeout bounds the post-write cache drop, which outlives the caller's context.
const invalidateTimeout = time.Second

const (
	minOriginLen      = 3
	minDestinationLen = 3
	minCargoTypeLen   = 2
)

var (
	errNotFound           = apperr.New(apperr.ErrNotFound, "load not found")
	errInvalidID          = apperr.New(apperr.ErrInvalid, "invalid load id")
	errInvalidOrigin      = apperr.New(apperr.ErrInvalid, "origin must be at least 3 characters")
	errInvalidDestination = apperr.New(apperr.ErrInvalid, "destination must be at least 3 characters")
	errInvalidCargoType   = apperr.New(apperr.ErrInvalid, "cargo type must be at least 2 characters")
	errEmptyUpdate        = apperr.New(apperr.ErrInvalid, "nothing to update")
	errInvalidStatus      = apperr.New(apperr.ErrInvalidState, "invalid load status")
)

// Service owns load writes and the cached load listing.
type Service struct {
	repo             loadRepository
	cache            listCache
	cacheTTL         time.Duration
	operationTimeout time.Duration
	logger           logx.Logger
	cacheRequests    *prometheus.CounterVec
	now              func() time.Time
	newID            func() uuid.UUID
}

// NewService creates a load Service. cacheRequests may be nil.
func NewService(
	r loadRepository,
	c listCache,
	cacheTTL time.Duration,
	timeout time.Duration,
	logger logx.Logger,
	cacheRequests *prometheus.CounterVec,
) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		cache:            c,
		cacheTTL:         cacheTTL,
		operationTimeout: timeout,
		logger:           logger,
		cacheRequests:    cacheRequests,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.New,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create stores a new PENDING load and drops the cached listing.
func (s *Service) Create(ctx context.Context, origin, destination, cargoType string) (*domain.Load, error) {
	l := &domain.Load{
		Origin:      strings.TrimSpace(origin),
		Destination: strings.TrimSpace(destination),
		CargoType:   strings.TrimSpace(cargoType),
	}
	if err := validateFields(&l.Origin, &l.Destination, &l.CargoType); err != nil {
		return nil, err
	}
	l.ID = s.newID()
	l.Status = domain.LoadPending
	l.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	s.invalidate(ctx, "create")

	s.logger.Info("load created",
		logx.String("event", "load_created"),
		logx.String("load_id", l.ID.String()),
	)
	return l, nil
}

// FindAll returns every load, newest first. The listing is read through the cache;
// cache failures fall back to the store.
func (s *Service) FindAll(ctx context.Context) ([]domain.Load, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cacheHealthy := true
	b, ok, err := s.cache.Get(ctx, CacheKeyAll)
	switch {
	case err != nil:
		cacheHealthy = false
		s.observe("error")
		s.logger.Warn("loads cache read failed", logx.String("key", CacheKeyAll), logx.Err(err))
	case ok:
		list, derr := decodeList(b)
		if derr == nil {
			s.observe("hit")
			return list, nil
		}
		s.observe("error")
		s.logger.Warn("loads cache payload undecodable", logx.String("key", CacheKeyAll), logx.Err(derr))
	default:
		s.observe("miss")
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if cacheHealthy {
		s.fill(ctx, list)
	}
	return list, nil
}

// Get retrieves a load by its ID.
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Load, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errNotFound
	}
	return l, nil
}

// Update applies an administrative partial update and returns the refreshed load.
func (s *Service) Update(ctx context.Context, rawID string, u domain.PartialLoadUpdate) (*domain.Load, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}
	u.ID = id

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	l, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errNotFound
	}
	s.invalidate(ctx, "update")
	return l, nil
}

// InvalidateCache drops the cached listing. Callers treat failures as best-effort.
func (s *Service) InvalidateCache(ctx context.Context) error {
	return s.cache.Del(ctx, CacheKeyAll)
}

// invalidate runs after a committed write, so caller cancellation must not skip it.
func (s *Service) invalidate(ctx context.Context, op string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()
	if err := s.InvalidateCache(ctx); err != nil {
		s.logger.Warn("loads cache invalidation failed",
			logx.String("op", op),
			logx.Err(err),
		)
	}
}

func (s *Service) fill(ctx context.Context, list []domain.Load) {
	b, err := encodeList(list)
	if err != nil {
		s.logger.Error("loads cache encode failed", logx.Err(err))
		return
	}
	if err := s.cache.Set(ctx, CacheKeyAll, b, s.cacheTTL); err != nil {
		s.logger.Warn("loads cache write failed", logx.String("key", CacheKeyAll), logx.Err(err))
	}
}

func (s *Service) observe(outcome string) {
	if s.cacheRequests != nil {
		s.cacheRequests.WithLabelValues(outcome).Inc()
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

func validateFields(origin, destination, cargoType *string) error {
	if origin != nil && utf8.RuneCountInString(*origin) < minOriginLen {
		return errInvalidOrigin
	}
	if destination != nil && utf8.RuneCountInString(*destination) < minDestinationLen {
		return errInvalidDestination
	}
	if cargoType != nil && utf8.RuneCountInString(*cargoType) < minCargoTypeLen {
		return errInvalidCargoType
	}
	return nil
}

func validateUpdate(u *domain.PartialLoadUpdate) error {
	if u.Empty() {
		return errEmptyUpdate
	}
	for _, f := range []*string{u.Origin, u.Destination, u.CargoType} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
	if err := validateFields(u.Origin, u.Destination, u.CargoType); err != nil {
		return err
	}
	if u.Status != nil && !u.Status.Valid() {
		return errInvalidStatus
	}
	return nil
}
