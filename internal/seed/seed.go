// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed replaces the catalogue collection with a bundled dataset.

# Reset Sequence

 1. Insert every record into a fresh staging collection (ordered InsertMany).
 2. Create the lookup indexes on staging.
 3. Swap staging over the live collection with renameCollection/dropTarget.
 4. Verify the live count matches the dataset.
 5. Invalidate the lookup cache, if any.

A failure in steps 1-2 drops the staging collection and leaves the live
collection untouched, so a reset either fully applies or not at all.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/bookcatalog/internal/catalog"
)

// cleanupTimeout bounds dropping the staging collection after a failure.
const cleanupTimeout = 10 * time.Second

// Invalidator clears cached lookups after the collection is replaced.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Loader performs the reset-and-reload against one collection.
type Loader struct {
	database   *mongo.Database
	collection string
	cache      Invalidator
	logger     *slog.Logger
	now        func() time.Time
}

// Option customises a [Loader].
type Option func(*Loader)

// WithCache invalidates the given cache after every successful reset.
func WithCache(cache Invalidator) Option {
	return func(loader *Loader) {
		loader.cache = cache
	}
}

// NewLoader constructs a [Loader] for the named collection of database.
func NewLoader(database *mongo.Database, collection string, logger *slog.Logger, opts ...Option) *Loader {
	loader := &Loader{
		database:   database,
		collection: collection,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Reset replaces every record in the live collection with records and returns
// the number of records now stored.
func (loader *Loader) Reset(ctx context.Context, records []bson.D) (int64, error) {
	live := loader.database.Collection(loader.collection)

	if len(records) == 0 {
		if _, err := live.DeleteMany(ctx, bson.D{}); err != nil {
			return 0, fmt.Errorf("seed: clear %s: %w", loader.collection, err)
		}
		loader.logger.WarnContext(ctx, "seed_dataset_empty", slog.String("collection", loader.collection))
		return 0, loader.invalidate(ctx)
	}

	stagingName := fmt.Sprintf("%s_seed_%d", loader.collection, loader.now().UnixNano())
	staging := loader.database.Collection(stagingName)

	// 1-2. Stage the dataset
	if err := loader.stage(ctx, staging, records); err != nil {
		loader.dropStaging(ctx, staging)
		return 0, err
	}

	// 3. Atomic swap
	if err := loader.swap(ctx, stagingName); err != nil {
		loader.dropStaging(ctx, staging)
		return 0, err
	}

	// 4. Verify
	count, err := catalog.NewMongoRepository(live).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: count %s: %w", loader.collection, err)
	}
	if count != int64(len(records)) {
		return count, fmt.Errorf("seed: %s holds %d records after reset, expected %d", loader.collection, count, len(records))
	}

	loader.logger.InfoContext(ctx, "seed_completed",
		slog.String("collection", loader.collection),
		slog.Int64("records", count),
	)

	// 5. Cache
	return count, loader.invalidate(ctx)
}

func (loader *Loader) stage(ctx context.Context, staging *mongo.Collection, records []bson.D) error {
	documents := make([]interface{}, len(records))
	for i := range records {
		documents[i] = records[i]
	}

	result, err := staging.InsertMany(ctx, documents, options.InsertMany().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("seed: insert into %s: %w", staging.Name(), err)
	}
	if len(result.InsertedIDs) != len(records) {
		return fmt.Errorf("seed: inserted %d of %d records into %s", len(result.InsertedIDs), len(records), staging.Name())
	}

	return catalog.EnsureIndexes(ctx, staging)
}

func (loader *Loader) swap(ctx context.Context, stagingName string) error {
	databaseName := loader.database.Name()
	command := bson.D{
		{Key: "renameCollection", Value: databaseName + "." + stagingName},
		{Key: "to", Value: databaseName + "." + loader.collection},
		{Key: "dropTarget", Value: true},
	}

	admin := loader.database.Client().Database("admin")
	if err := admin.RunCommand(ctx, command).Err(); err != nil {
		return fmt.Errorf("seed: swap %s into %s: %w", stagingName, loader.collection, err)
	}
	return nil
}

func (loader *Loader) dropStaging(ctx context.Context, staging *mongo.Collection) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := staging.Drop(cleanupCtx); err != nil {
		loader.logger.ErrorContext(ctx, "seed_staging_drop_failed",
			slog.String("collection", staging.Name()),
			slog.Any("error", err),
		)
	}
}

func (loader *Loader) invalidate(ctx context.Context) error {
	if loader.cache == nil {
		return nil
	}
	if err := loader.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("seed: invalidate cache: %w", err)
	}
	return nil
}
