package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"truck-dispatch/internal/http/middleware"
	"truck-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	LoadsCacheRequests     *prometheus.CounterVec `name:"loads_cache_requests_total"`
	SideEffectFailures     *prometheus.CounterVec `name:"assignment_side_effect_failures_total"`
	AssignmentTransitions  *prometheus.CounterVec `name:"assignment_transitions_total"`
	EventsPublished        *prometheus.CounterVec `name:"events_published_total"`
	HTTP                   *middleware.HTTPMetrics
}

// provideMetrics registers the API metrics on the default registerer.
// Collectors registered earlier are reused.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer
	var (
		out metricsOut
		err error
	)

	if out.RateLimitExceededTotal, err = register(reg, "rate_limit_exceeded_total",
		metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.LoadsCacheRequests, err = register(reg, "loads_cache_requests_total",
		metrics.NewLoadsCacheRequestsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.SideEffectFailures, err = register(reg, "assignment_side_effect_failures_total",
		metrics.NewSideEffectFailuresTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.AssignmentTransitions, err = register(reg, "assignment_transitions_total",
		metrics.NewAssignmentTransitionsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.EventsPublished, err = register(reg, "events_published_total",
		metrics.NewEventsPublishedTotal()); err != nil {
		return metricsOut{}, err
	}

	httpMetrics := middleware.NewHTTPMetrics()
	if httpMetrics.RequestsTotal, err = register(reg, "http_requests_total", httpMetrics.RequestsTotal); err != nil {
		return metricsOut{}, err
	}
	if httpMetrics.RequestDuration, err = register(reg, "http_request_duration_seconds",
		httpMetrics.RequestDuration); err != nil {
		return metricsOut{}, err
	}
	out.HTTP = httpMetrics

	return out, nil
}

type workerMetricsOut struct {
	dig.Out

	AuditRecords *prometheus.CounterVec `name:"audit_records_total"`
}

func provideWorkerMetrics() (workerMetricsOut, error) {
	c, err := register(prometheus.DefaultRegisterer, "audit_records_total", metrics.NewAuditRecordsTotal())
	if err != nil {
		return workerMetricsOut{}, err
	}
	return workerMetricsOut{AuditRecords: c}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, name string, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
