// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/bookcatalog/internal/platform/constants"
)

// scanBatch is the COUNT hint used when walking the cache keyspace.
const scanBatch = 100

// CachedRepository decorates a [Repository] with a Redis read-through cache.
//
// Only single-record lookups are cached. List and Count always hit the
// underlying store. Misses (NOT_FOUND) are never cached. A Redis failure is
// logged and the call falls through to the underlying store.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a cache whose entries expire after ttl.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// List bypasses the cache.
func (repository *CachedRepository) List(ctx context.Context) ([]*Book, error) {
	return repository.next.List(ctx)
}

func (repository *CachedRepository) Count(ctx context.Context) (int64, error) {
	return repository.next.Count(ctx)
}

func (repository *CachedRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Book, error) {
	return repository.lookup(ctx, idKey(id), func() (*Book, error) {
		return repository.next.GetByID(ctx, id)
	})
}

func (repository *CachedRepository) GetByISBN(ctx context.Context, isbn int64) (*Book, error) {
	return repository.lookup(ctx, isbnKey(isbn), func() (*Book, error) {
		return repository.next.GetByISBN(ctx, isbn)
	})
}

/*
Invalidate deletes every cached book.

It walks the keyspace with SCAN rather than KEYS so a large cache does not
block the server, and deletes each batch with UNLINK.
*/
func (repository *CachedRepository) Invalidate(ctx context.Context) error {
	iterator := repository.client.Scan(ctx, 0, constants.RedisPrefixBook+"*", scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	removed := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := repository.client.Unlink(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis_book_cache_unlink_failed: %w", err)
		}
		removed += len(batch)
		batch = batch[:0]
		return nil
	}

	for iterator.Next(ctx) {
		batch = append(batch, iterator.Val())
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iterator.Err(); err != nil {
		return fmt.Errorf("redis_book_cache_scan_failed: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}

	repository.logger.InfoContext(ctx, "book_cache_invalidated", slog.Int("keys", removed))
	return nil
}

func (repository *CachedRepository) lookup(ctx context.Context, key string, load func() (*Book, error)) (*Book, error) {

	// 1. Try the cache
	payload, err := repository.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		book := &Book{}
		if decodeErr := json.Unmarshal(payload, book); decodeErr == nil {
			return book, nil
		}
		repository.logger.WarnContext(ctx, "book_cache_corrupt_entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		repository.logger.WarnContext(ctx, "book_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}

	// 2. Fall through to the store
	book, err := load()
	if err != nil {
		return nil, err
	}

	// 3. Populate for the next reader
	encoded, err := json.Marshal(book)
	if err == nil {
		err = repository.client.Set(ctx, key, encoded, repository.ttl).Err()
	}
	if err != nil {
		repository.logger.WarnContext(ctx, "book_cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}

	return book, nil
}

func idKey(id primitive.ObjectID) string {
	return constants.RedisPrefixBook + "id:" + id.Hex()
}

func isbnKey(isbn int64) string {
	return constants.RedisPrefixBook + "isbn:" + strconv.FormatInt(isbn, 10)
}
