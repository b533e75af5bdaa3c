package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service and worker settings.
type Config struct {
	Port    int
	Migrate bool

	DB         DB
	Redis      Redis
	Kafka      Kafka
	Mongo      Mongo
	Assignment Assignment
	Cache      Cache
	RateLimit  RateLimit
	Pprof      Pprof
	Log        Log
}

// DB stores Postgres connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// DSN returns a libpq-style connection URL.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name, d.SSLMode)
}

// Redis stores cache connection settings. With Enabled false the load cache is a no-op.
type Redis struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	OpTimeout time.Duration
}

// Kafka stores broker settings for the event relay and the audit consumer.
type Kafka struct {
	Brokers         []string
	AssignmentTopic string
	GroupID         string
	ProducerTimeout time.Duration
}

// Mongo stores audit store settings.
type Mongo struct {
	URI      string
	Database string
}

// Assignment stores assignment lifecycle timeouts.
type Assignment struct {
	TxTimeout         time.Duration
	SideEffectTimeout time.Duration
}

// Cache stores read-through cache settings.
type Cache struct {
	LoadsTTL time.Duration
}

// RateLimit stores per-client HTTP rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores debug server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Log stores logger settings.
type Log struct {
	Backend string
	Level   string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := Default()
	e := &envReader{}

	cfg.Port = e.int("PORT", cfg.Port)
	cfg.Migrate = e.bool("DB_MIGRATE", cfg.Migrate)

	cfg.DB.Host = e.string("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = e.string("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = e.string("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = e.string("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = e.string("POSTGRES_DB", cfg.DB.Name)
	cfg.DB.SSLMode = e.string("POSTGRES_SSLMODE", cfg.DB.SSLMode)

	cfg.Redis.Enabled = e.bool("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Addr = e.string("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = e.string("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = e.int("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.OpTimeout = e.duration("REDIS_OP_TIMEOUT", cfg.Redis.OpTimeout)

	cfg.Kafka.Brokers = e.list("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.AssignmentTopic = e.string("KAFKA_ASSIGNMENT_TOPIC", cfg.Kafka.AssignmentTopic)
	cfg.Kafka.GroupID = e.string("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.ProducerTimeout = e.duration("KAFKA_PRODUCER_TIMEOUT", cfg.Kafka.ProducerTimeout)

	cfg.Mongo.URI = e.string("MONGODB_URI", cfg.Mongo.URI)
	cfg.Mongo.Database = e.string("MONGODB_DATABASE", cfg.Mongo.Database)

	cfg.Assignment.TxTimeout = e.duration("ASSIGNMENT_TX_TIMEOUT", cfg.Assignment.TxTimeout)
	cfg.Assignment.SideEffectTimeout = e.duration("SIDE_EFFECT_TIMEOUT", cfg.Assignment.SideEffectTimeout)

	cfg.Cache.LoadsTTL = e.duration("LOADS_CACHE_TTL", cfg.Cache.LoadsTTL)

	cfg.RateLimit.Enabled = e.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = e.float("RATE_LIMIT_RPS", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = e.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = e.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = e.int("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	cfg.Pprof.Enabled = e.bool("PPROF_ENABLED", cfg.Pprof.Enabled)
	cfg.Pprof.Addr = e.string("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = e.string("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = e.string("PPROF_PASSWORD", cfg.Pprof.Pass)

	cfg.Log.Backend = e.string("LOG_BACKEND", cfg.Log.Backend)
	cfg.Log.Level = e.string("LOG_LEVEL", cfg.Log.Level)

	if e.err != nil {
		return nil, e.err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.BoolVar(&cfg.Migrate, "migrate", cfg.Migrate, "apply database migrations on start")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %q", c.DB.Port)
	}
	if c.Assignment.TxTimeout <= 0 {
		return fmt.Errorf("invalid ASSIGNMENT_TX_TIMEOUT: %s", c.Assignment.TxTimeout)
	}
	if c.Assignment.SideEffectTimeout <= 0 {
		return fmt.Errorf("invalid SIDE_EFFECT_TIMEOUT: %s", c.Assignment.SideEffectTimeout)
	}
	if c.Cache.LoadsTTL <= 0 {
		return fmt.Errorf("invalid LOADS_CACHE_TTL: %s", c.Cache.LoadsTTL)
	}
	switch c.Log.Backend {
	case LogBackendSlog, LogBackendZap:
	default:
		return fmt.Errorf("invalid LOG_BACKEND: %q", c.Log.Backend)
	}
	return nil
}

// envReader reads typed environment values and keeps the first parse error.
type envReader struct {
	err error
}

func (e *envReader) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *envReader) fail(key, v string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
}

func (e *envReader) string(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *envReader) float(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return f
}

func (e *envReader) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}

func (e *envReader) list(key string, def []string) []string {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
