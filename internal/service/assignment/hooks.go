package assignment

import (
	"context"
	"fmt"

	"truck-dispatch/internal/logx"
)

const (
	effectInvalidateCache = "invalidate_cache"
	effectPublishEvent    = "publish_event"
)

type hook struct {
	effect string
	run    func(ctx context.Context) error
}

// runHooks executes post-commit side effects in order. Each hook gets its own
// deadline detached from the caller; failures are logged and counted only.
func (s *Service) runHooks(ctx context.Context, assignmentID string, hooks ...hook) {
	base := context.WithoutCancel(ctx)
	for _, h := range hooks {
		if err := s.runHook(base, h); err != nil {
			s.logger.Error("post-commit side effect failed",
				logx.String("effect", h.effect),
				logx.String("assignment_id", assignmentID),
				logx.Err(err),
			)
			if s.metrics.SideEffectFailures != nil {
				s.metrics.SideEffectFailures.WithLabelValues(h.effect).Inc()
			}
		}
	}
}

func (s *Service) runHook(base context.Context, h hook) (err error) {
	ctx, cancel := context.WithTimeout(base, s.cfg.SideEffectTimeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return h.run(ctx)
}
