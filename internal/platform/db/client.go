package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appName = "CFA HUD"

// Connect establishes the process-wide MongoDB client and verifies
// connectivity with a ping against the given database. The returned client is
// safe for concurrent use and is shared by every request; callers must
// Disconnect it on shutdown.
func Connect(ctx context.Context, connectionString, dbName string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(connectionString).
		SetAppName(appName)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Ping(ctx, client, dbName); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

// Ping issues a lightweight ping command against the named database.
func Ping(ctx context.Context, client *mongo.Client, dbName string) error {
	if err := client.Database(dbName).RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
