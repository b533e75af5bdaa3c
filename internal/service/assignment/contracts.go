//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"

	"github.com/google/uuid"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/ports/assignmenttx"
)

type assignmentRepository interface {
	WithTx(ctx context.Context, fn func(tx assignmenttx.Repository) error) error
	GetWithRelations(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
}

// cacheInvalidator drops cached load listings after a committed change.
type cacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// eventPublisher hands committed assignments to the event relay.
type eventPublisher interface {
	PublishAssignment(ctx context.Context, ev domain.AssignmentEvent) error
}
