package app

import (
	"context"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/dig"

	"truck-dispatch/internal/auditstore"
	"truck-dispatch/internal/config"
	"truck-dispatch/internal/logx"
	"truck-dispatch/internal/service/audit"
	"truck-dispatch/internal/transport/kafka"
)

type auditStoreCloser func() error

type mongoOut struct {
	dig.Out

	Client *mongo.Client
	Closer auditStoreCloser
}

func newMongoClient(ctx context.Context, cfg *config.Config, logger logx.Logger) (mongoOut, error) {
	client, err := auditstore.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return mongoOut{}, err
	}
	logger.Info("mongo connected", logx.String("database", cfg.Mongo.Database))
	return mongoOut{
		Client: client,
		Closer: func() error {
			return client.Disconnect(context.WithoutCancel(ctx))
		},
	}, nil
}

func newAuditStore(ctx context.Context, cfg *config.Config, client *mongo.Client) (*auditstore.Store, error) {
	coll := client.Database(cfg.Mongo.Database).Collection(auditstore.Collection)
	if err := auditstore.EnsureIndexes(ctx, coll); err != nil {
		return nil, err
	}
	return auditstore.New(coll), nil
}

type recorderIn struct {
	dig.In

	Store   *auditstore.Store
	Logger  logx.Logger
	Records *prometheus.CounterVec `name:"audit_records_total" optional:"true"`
}

func newAuditRecorder(in recorderIn) *audit.Recorder {
	return audit.NewRecorder(in.Store, in.Logger, in.Records)
}

func newAuditConsumer(cfg *config.Config, logger logx.Logger, rec *audit.Recorder) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AssignmentTopic, rec.Record)
}

func registerAudit(container *dig.Container) error {
	return provideAll(container,
		newMongoClient,
		newAuditStore,
		newAuditRecorder,
		newAuditConsumer,
	)
}

func buildWorkerContainer(ctx context.Context) (*dig.Container, error) {
	container := dig.New()
	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerAudit(container); err != nil {
		return nil, fmt.Errorf("audit: %w", err)
	}
	return container, nil
}

// MustBuildWorkerContainer builds the audit worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorkerContainer(ctx)
	if err != nil {
		log.Fatalf("failed to build worker container: %v", err)
	}
	return container
}
