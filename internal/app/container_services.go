package app

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"truck-dispatch/internal/cache"
	"truck-dispatch/internal/config"
	"truck-dispatch/internal/logx"
	"truck-dispatch/internal/repository"
	"truck-dispatch/internal/service/assignment"
	"truck-dispatch/internal/service/driver"
	"truck-dispatch/internal/service/load"
	"truck-dispatch/internal/transport/kafka"
)

const serviceOpTimeout = 3 * time.Second

type byteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type cacheOut struct {
	dig.Out

	Cache  byteCache
	Client *redis.Client
}

// newLoadsCache falls back to a no-op cache when Redis is disabled.
func newLoadsCache(cfg *config.Config, logger logx.Logger) cacheOut {
	if !cfg.Redis.Enabled || cfg.Redis.Addr == "" {
		logger.Warn("redis disabled, loads cache is a no-op")
		return cacheOut{Cache: cache.Nop{}}
	}
	client := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	return cacheOut{
		Cache:  cache.NewRedis(client, cfg.Redis.OpTimeout),
		Client: client,
	}
}

type producerIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	Published *prometheus.CounterVec `name:"events_published_total" optional:"true"`
}

func newProducer(in producerIn) (*kafka.Producer, error) {
	return kafka.NewProducer(
		in.Logger,
		in.Config.Kafka.Brokers,
		in.Config.Kafka.AssignmentTopic,
		in.Config.Kafka.ProducerTimeout,
		in.Published,
	)
}

func newDriverService(repo *repository.DriverRepo, logger logx.Logger) *driver.Service {
	return driver.NewService(repo, serviceOpTimeout, logger)
}

type loadServiceIn struct {
	dig.In

	Config        *config.Config
	Logger        logx.Logger
	Repo          *repository.LoadRepo
	Cache         byteCache
	CacheRequests *prometheus.CounterVec `name:"loads_cache_requests_total" optional:"true"`
}

func newLoadService(in loadServiceIn) *load.Service {
	return load.NewService(in.Repo, in.Cache, in.Config.Cache.LoadsTTL, serviceOpTimeout, in.Logger, in.CacheRequests)
}

type assignmentServiceIn struct {
	dig.In

	Config             *config.Config
	Logger             logx.Logger
	Repo               *repository.AssignmentRepo
	Loads              *load.Service
	Producer           *kafka.Producer
	Transitions        *prometheus.CounterVec `name:"assignment_transitions_total" optional:"true"`
	SideEffectFailures *prometheus.CounterVec `name:"assignment_side_effect_failures_total" optional:"true"`
}

func newAssignmentService(in assignmentServiceIn) *assignment.Service {
	return assignment.NewService(
		in.Repo,
		in.Loads,
		in.Producer,
		assignment.Config{
			TxTimeout:         in.Config.Assignment.TxTimeout,
			SideEffectTimeout: in.Config.Assignment.SideEffectTimeout,
		},
		assignment.Metrics{
			Transitions:        in.Transitions,
			SideEffectFailures: in.SideEffectFailures,
		},
		in.Logger,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewDriverRepo,
		repository.NewLoadRepo,
		repository.NewAssignmentRepo,
		newLoadsCache,
		newProducer,
		newDriverService,
		newLoadService,
		newAssignmentService,
	)
}
