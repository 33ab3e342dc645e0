// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mongodb provides a managed MongoDB client for the catalog application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It owns the physical
// connection lifecycle (connect, ping, disconnect). Repositories receive a
// [*mongo.Collection] obtained from the client; they never dial on their own.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Opinionated client settings for the catalog workload.
const (
	// maxPoolSize is the maximum number of connections per server.
	maxPoolSize = 25
	// minPoolSize keeps a warm set of connections to avoid cold-start latency.
	minPoolSize = 2
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// serverSelectionTimeout bounds how long an operation waits for a usable server.
	serverSelectionTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// disconnectTimeout bounds draining the pool on shutdown.
	disconnectTimeout = 5 * time.Second
)

// DefaultDatabase is used when neither the URI path nor an override names one.
const DefaultDatabase = "project-mongo"

// NewClient creates and validates a new MongoDB client.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// or mongodb+srv:// connection string.
//   - logger: Structured logger for connection events.
func NewClient(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName("bookcatalog").
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout)

	if err := clientOptions.Validate(); err != nil {
		return nil, fmt.Errorf("mongodb: invalid URI: %w", err)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to create client: %w", err)
	}

	// Validate that we can actually reach the server.
	if err := Ping(ctx, client); err != nil {
		_ = Disconnect(client)
		return nil, err
	}

	logger.Info("mongodb client connected",
		slog.String("hosts", strings.Join(clientOptions.Hosts, ",")),
		slog.Uint64("max_pool_size", maxPoolSize),
	)

	return client, nil
}

// Ping verifies that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}

// Disconnect drains the connection pool.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb: disconnect failed: %w", err)
	}

	return nil
}

// DatabaseName resolves the database to use.
//
// An explicit override wins, then the path component of the URI
// (mongodb://host/<database>), then [DefaultDatabase].
func DatabaseName(uri, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	parsed, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("mongodb: invalid URI: %w", err)
	}

	if parsed.Database != "" {
		return parsed.Database, nil
	}

	return DefaultDatabase, nil
}
