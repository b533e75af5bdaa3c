package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"truck-dispatch/internal/http/handlers"
)

// DefaultRequestTimeout bounds a request's context.
const DefaultRequestTimeout = 10 * time.Second

type options struct {
	middlewares []func(http.Handler) http.Handler
	metrics     http.Handler
	timeout     time.Duration
}

// Option customises the router.
type Option func(*options)

// WithMiddleware appends middlewares after the base chain.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(o *options) { o.middlewares = append(o.middlewares, mw...) }
}

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(o *options) { o.metrics = h }
}

// WithTimeout overrides DefaultRequestTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	h *handlers.Handlers,
	drivers *handlers.DriverHandler,
	loads *handlers.LoadHandler,
	assignments *handlers.AssignmentHandler,
	opts ...Option,
) http.Handler {
	o := options{timeout: DefaultRequestTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(o.middlewares...)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(o.timeout))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	if o.metrics != nil {
		r.Method(http.MethodGet, "/metrics", o.metrics)
	}

	r.Route("/drivers", func(r chi.Router) {
		r.Post("/", drivers.Create)
		r.Get("/{id}", drivers.GetByID)
		r.Patch("/{id}/status", drivers.UpdateStatus)
	})

	r.Route("/loads", func(r chi.Router) {
		r.Post("/", loads.Create)
		r.Get("/", loads.List)
		r.Get("/{id}", loads.GetByID)
		r.Patch("/{id}", loads.Update)
	})

	r.Route("/assignments", func(r chi.Router) {
		r.Post("/", assignments.Create)
		r.Get("/{id}", assignments.GetByID)
		r.Patch("/{id}/status", assignments.UpdateStatus)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
