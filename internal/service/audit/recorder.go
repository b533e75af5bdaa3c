package audit

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

type recordStore interface {
	Insert(ctx context.Context, rec domain.AuditRecord) error
}

// Recorder persists relayed assignment events for auditing.
type Recorder struct {
	store   recordStore
	logger  logx.Logger
	records *prometheus.CounterVec
	now     func() time.Time
}

// NewRecorder creates a Recorder. records may be nil.
func NewRecorder(store recordStore, logger logx.Logger, records *prometheus.CounterVec) *Recorder {
	return &Recorder{
		store:   store,
		logger:  logger,
		records: records,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Record stores the event stamped with its receive time.
// The same event delivered twice is stored twice.
func (r *Recorder) Record(ctx context.Context, ev domain.AuditEvent) error {
	typ := strings.TrimSpace(ev.Type)
	if typ == "" {
		typ = domain.EventLoadAssigned
	}

	rec := domain.AuditRecord{
		Type:       typ,
		DriverID:   ev.DriverID,
		LoadID:     ev.LoadID,
		Payload:    ev.Payload,
		ReceivedAt: r.now(),
	}
	if err := r.store.Insert(ctx, rec); err != nil {
		r.observe("error")
		r.logger.Error("audit record failed",
			logx.String("type", typ),
			logx.String("driver_id", ev.DriverID),
			logx.String("load_id", ev.LoadID),
			logx.Err(err),
		)
		return err
	}

	r.observe("stored")
	r.logger.Info("audit event recorded",
		logx.String("event", "audit_recorded"),
		logx.String("type", typ),
		logx.String("driver_id", ev.DriverID),
		logx.String("load_id", ev.LoadID),
	)
	return nil
}

func (r *Recorder) observe(result string) {
	if r.records != nil {
		r.records.WithLabelValues(result).Inc()
	}
}
