// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/bookcatalog/internal/catalog"
	"github.com/taibuivan/bookcatalog/internal/platform/apperr"
)

func newCachedRepository(t *testing.T, next catalog.Repository) (*catalog.CachedRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return catalog.NewCachedRepository(next, client, time.Minute, discardLogger()), server
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	books := sampleBooks()
	backing := newMemoryRepository(books...)
	cached, server := newCachedRepository(t, backing)
	ctx := context.Background()

	first, err := cached.GetByISBN(ctx, 312195516)
	require.NoError(t, err)
	second, err := cached.GetByISBN(ctx, 312195516)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, backing.callCount("GetByISBN"))
	assert.True(t, server.Exists("catalog:book:isbn:312195516"))
	assert.Equal(t, time.Minute, server.TTL("catalog:book:isbn:312195516"))

	byID, err := cached.GetByID(ctx, books[0].ID)
	require.NoError(t, err)
	_, err = cached.GetByID(ctx, books[0].ID)
	require.NoError(t, err)
	assert.Equal(t, books[0].Title, byID.Title)
	assert.Equal(t, books[0].ID, byID.ID)
	assert.Equal(t, 1, backing.callCount("GetByID"))
}

func TestCachedRepository_MissesNotCached(t *testing.T) {
	backing := newMemoryRepository()
	cached, server := newCachedRepository(t, backing)

	_, err := cached.GetByID(context.Background(), primitive.NewObjectID())
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	assert.Empty(t, server.Keys())
}

func TestCachedRepository_ListBypassesCache(t *testing.T) {
	backing := newMemoryRepository(sampleBooks()...)
	cached, server := newCachedRepository(t, backing)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		books, err := cached.List(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 2)
	}
	count, err := cached.Count(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, count)
	assert.Equal(t, 3, backing.callCount("List"))
	assert.Empty(t, server.Keys())
}

func TestCachedRepository_RedisDown(t *testing.T) {
	backing := newMemoryRepository(sampleBooks()...)
	cached, server := newCachedRepository(t, backing)
	server.Close()

	book, err := cached.GetByISBN(context.Background(), 439785960)
	require.NoError(t, err)
	assert.Equal(t, 1, book.BookID)
}

func TestCachedRepository_CorruptEntry(t *testing.T) {
	backing := newMemoryRepository(sampleBooks()...)
	cached, server := newCachedRepository(t, backing)
	require.NoError(t, server.Set("catalog:book:isbn:312195516", "{not json"))

	book, err := cached.GetByISBN(context.Background(), 312195516)
	require.NoError(t, err)
	assert.Equal(t, "The Red Tent", book.Title)
	assert.Equal(t, 1, backing.callCount("GetByISBN"))
}

func TestCachedRepository_Invalidate(t *testing.T) {
	books := sampleBooks()
	cached, server := newCachedRepository(t, newMemoryRepository(books...))
	ctx := context.Background()
	require.NoError(t, server.Set("unrelated", "keep"))

	for _, book := range books {
		_, err := cached.GetByID(ctx, book.ID)
		require.NoError(t, err)
		_, err = cached.GetByISBN(ctx, book.ISBN)
		require.NoError(t, err)
	}
	require.Len(t, server.Keys(), 5)

	require.NoError(t, cached.Invalidate(ctx))
	assert.Equal(t, []string{"unrelated"}, server.Keys())
}
