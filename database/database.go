package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/alimbdit/bistro-boss-server/config"
)

// OpTimeout bounds every storage round trip, including the startup ping.
const OpTimeout = 10 * time.Second

// Connect opens the MongoDB client and verifies the connection with a ping.
func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), OpTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// Disconnect closes the client, bounded by the same timeout as regular ops.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), OpTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}
