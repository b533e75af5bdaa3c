package auditstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"truck-dispatch/internal/domain"
)

// Collection is the MongoDB collection holding audit entries.
const Collection = "audit_events"

type inserter interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

type auditDocument struct {
	DriverID  string         `bson:"driverId"`
	LoadID    string         `bson:"loadId"`
	Type      string         `bson:"type"`
	Payload   map[string]any `bson:"payload"`
	Timestamp time.Time      `bson:"timestamp"`
}

// Store appends audit records to MongoDB. Duplicates are stored as-is.
type Store struct {
	coll inserter
}

// New creates a Store over the given collection.
func New(coll inserter) *Store {
	return &Store{coll: coll}
}

// Connect opens a client and pings the server.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the lookup index on (driverId, timestamp).
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "driverId", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("create audit index: %w", err)
	}
	return nil
}

// Insert stores one audit record.
func (s *Store) Insert(ctx context.Context, rec domain.AuditRecord) error {
	doc := auditDocument{
		DriverID:  rec.DriverID,
		LoadID:    rec.LoadID,
		Type:      rec.Type,
		Payload:   rec.Payload,
		Timestamp: rec.ReceivedAt.UTC(),
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
