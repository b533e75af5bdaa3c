//go:generate mockgen -source=contracts.go -destination=load_mocks_test.go -package=load_test

package load

import (
	"context"
	"time"

	"github.com/google/uuid"

	"truck-dispatch/internal/domain"
)

// loadRepository defines storage operations required by the load lifecycle.
// Get and UpdatePartial return nil, nil when the load does not exist.
type loadRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	List(ctx context.Context) ([]domain.Load, error)
	Create(ctx context.Context, l *domain.Load) error
	UpdatePartial(ctx context.Context, u domain.PartialLoadUpdate) (*domain.Load, error)
}

// listCache is a byte cache; Get reports a miss with ok=false and a nil error.
type listCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
