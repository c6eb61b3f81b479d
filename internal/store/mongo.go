package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/pkg/metrics"
)

// The snapshot lives in a single document so the whole-document contract of
// Store is preserved; swapping in per-collection Mongo queries would change
// repository and service behavior.
const snapshotID = "snapshot"

type snapshotDoc struct {
	ID string           `bson:"_id"`
	DB records.Database `bson:"db"`
}

// MongoStore persists the snapshot as one MongoDB document. Same contract as
// JSONStore; selected via STORE_BACKEND=mongo.
type MongoStore struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewMongoStore(col *mongo.Collection, timeout time.Duration) *MongoStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MongoStore{col: col, timeout: timeout}
}

func (s *MongoStore) Read() (records.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	metrics.StoreReads.WithLabelValues("mongo").Inc()

	var doc snapshotDoc
	err := s.col.FindOne(ctx, bson.M{"_id": snapshotID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return records.Empty(), nil
	}
	if err != nil {
		return records.Database{}, fmt.Errorf("read snapshot: %w", err)
	}
	return normalize(doc.DB), nil
}

func (s *MongoStore) Write(db records.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	doc := snapshotDoc{ID: snapshotID, DB: normalize(db)}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": snapshotID}, doc, opts); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	metrics.StoreWrites.WithLabelValues("mongo").Inc()
	return nil
}

// ConnectMongo opens a connection and verifies it with a ping. Caller should
// call client.Disconnect(ctx) when done.
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}
