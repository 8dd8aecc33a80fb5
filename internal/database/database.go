package database

import (
	"context"
	"fmt"
	"time"

	"github.com/atelier-works/projects-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// DB is the global database instance.
var DB *mongo.Database

var client *mongo.Client

// Connect opens the MongoDB connection, verifies it with a ping, and ensures
// collection indexes. Any failure here is a startup failure.
func Connect(ctx context.Context, cfg *config.AppConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	db := c.Database(cfg.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	client = c
	DB = db
	return db, nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// ensureIndexes keeps the newest-first list ordering and the filter lookups
// indexed.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("projects").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}
