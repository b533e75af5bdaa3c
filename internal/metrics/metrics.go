package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewLoadsCacheRequestsTotal counts load listing cache lookups by outcome (hit, miss, error).
func NewLoadsCacheRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loads_cache_requests_total",
		Help: "Total number of load listing cache lookups by outcome",
	}, []string{"outcome"})
}

// NewSideEffectFailuresTotal counts failed post-commit side effects by effect name.
func NewSideEffectFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_side_effect_failures_total",
		Help: "Total number of failed post-commit assignment side effects",
	}, []string{"effect"})
}

// NewAssignmentTransitionsTotal counts committed assignment transitions by target status.
func NewAssignmentTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_transitions_total",
		Help: "Total number of committed assignment transitions by status",
	}, []string{"status"})
}

// NewEventsPublishedTotal counts relay publish attempts by result.
func NewEventsPublishedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Total number of assignment events handed to the relay by result",
	}, []string{"result"})
}

// NewAuditRecordsTotal counts consumed audit events by result.
func NewAuditRecordsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_records_total",
		Help: "Total number of consumed audit events by result",
	}, []string{"result"})
}
