package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"truck-dispatch/internal/logx"
	"truck-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the audit consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes assignment events until the container context ends
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Logger, in.Consumer, in.Closer)
	})
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Closer   auditStoreCloser `optional:"true"`
}

func workerRun(
	ctx context.Context,
	logger logx.Logger,
	consumer *kafka.Consumer,
	storeCloser auditStoreCloser,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(logger, consumer, storeCloser)

	logger.Info("audit worker started")
	return consumer.Run(ctx)
}

func closeWorker(logger logx.Logger, consumer *kafka.Consumer, storeCloser auditStoreCloser) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if storeCloser != nil {
		if err := storeCloser(); err != nil {
			logger.Error("mongo disconnect error", logx.Err(err))
		}
	}
	_ = logger.Sync()
}
