package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"truck-dispatch/internal/logx"
	"truck-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the API servers
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP servers using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.NewSlogAdapter(slog.Default())
	}
	return logger
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pprof    *http.Server    `name:"pprof_server" optional:"true"`
	Pool     *pgxpool.Pool   `optional:"true"`
	Redis    *redis.Client   `optional:"true"`
	Producer *kafka.Producer `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	g, gctx := errgroup.WithContext(in.Ctx)

	servers := []*http.Server{in.Server}
	if in.Pprof != nil {
		servers = append(servers, in.Pprof)
	}
	for _, srv := range servers {
		g.Go(func() error {
			return serve(srv, in.Logger)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		in.Logger.Info("shutting down service-truck")
		for _, srv := range servers {
			gracefulShutdown(srv, in.Logger, shutdownTimeout)
		}
		return nil
	})

	err := g.Wait()
	closeResources(in)
	if err != nil {
		return err
	}
	return in.Ctx.Err()
}

func serve(srv *http.Server, logger logx.Logger) error {
	logger.Info("http server listening", logx.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return nil
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(in runIn) {
	if in.Producer != nil {
		if err := in.Producer.Close(); err != nil {
			in.Logger.Error("kafka producer close error", logx.Err(err))
		}
	}
	if in.Redis != nil {
		if err := in.Redis.Close(); err != nil {
			in.Logger.Error("redis close error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
	_ = in.Logger.Sync()
}
