package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"truck-dispatch/internal/config"
	"truck-dispatch/internal/http/handlers"
	"truck-dispatch/internal/http/middleware"
	"truck-dispatch/internal/http/middleware/ratelimit"
	"truck-dispatch/internal/http/pprofserver"
	"truck-dispatch/internal/http/router"
	"truck-dispatch/internal/logx"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewKeyedLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

type routerIn struct {
	dig.In

	Logger      logx.Logger
	Base        *handlers.Handlers
	Drivers     *handlers.DriverHandler
	Loads       *handlers.LoadHandler
	Assignments *handlers.AssignmentHandler
	RateLimit   *ratelimit.Middleware
	Metrics     *middleware.HTTPMetrics `optional:"true"`
}

func newRouter(in routerIn) http.Handler {
	return router.New(in.Base, in.Drivers, in.Loads, in.Assignments,
		router.WithMiddleware(
			middleware.Observability(in.Logger, in.Metrics),
			in.RateLimit.Handler(),
		),
		router.WithMetrics(promhttp.Handler()),
	)
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// newPprofServer yields a nil server when profiling is disabled.
func newPprofServer(cfg *config.Config) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: pprofserver.NewServer(cfg.Pprof.Addr, pprofserver.Config{
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})}
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		handlers.NewDriverUsecase,
		handlers.NewDriverHandler,
		handlers.NewLoadUsecase,
		handlers.NewLoadHandler,
		handlers.NewAssignmentUsecase,
		handlers.NewAssignmentHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServer,
		newPprofServer,
	)
}
