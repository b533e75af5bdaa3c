package config

import "time"

// Supported logger backends.
const (
	LogBackendSlog = "slog"
	LogBackendZap  = "zap"
)

const defaultPort = 8080

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "myuser",
	Pass:    "mypassword",
	Name:    "truck_dispatch",
	SSLMode: "disable",
}

var defaultRedis = Redis{
	Enabled:   true,
	Addr:      "localhost:6379",
	OpTimeout: 300 * time.Millisecond,
}

var defaultKafka = Kafka{
	AssignmentTopic: "load.assigned",
	GroupID:         "truck-audit-worker",
	ProducerTimeout: 2 * time.Second,
}

var defaultMongo = Mongo{
	URI:      "mongodb://localhost:27017",
	Database: "truck-audit",
}

var defaultAssignment = Assignment{
	TxTimeout:         5 * time.Second,
	SideEffectTimeout: 2 * time.Second,
}

var defaultCache = Cache{
	LoadsTTL: 60 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

var defaultLog = Log{
	Backend: LogBackendSlog,
	Level:   "info",
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:       defaultPort,
		DB:         defaultDB,
		Redis:      defaultRedis,
		Kafka:      defaultKafka,
		Mongo:      defaultMongo,
		Assignment: defaultAssignment,
		Cache:      defaultCache,
		RateLimit:  defaultRateLimit,
		Pprof:      defaultPprof,
		Log:        defaultLog,
	}
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}
