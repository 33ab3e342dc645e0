// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/bookcatalog/internal/platform/dberr"
)

// # MongoDB Repository

// MongoRepository implements [Repository] on a single MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository constructs a MongoDB backed book store.
func NewMongoRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// List decodes every document in the collection. An empty collection yields
// an empty, non-nil slice.
func (repository *MongoRepository) List(ctx context.Context) ([]*Book, error) {
	cursor, err := repository.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}

	books := make([]*Book, 0)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, dberr.Wrap(err, "decode_books")
	}

	return books, nil
}

// GetByID fetches the document whose _id equals id.
func (repository *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Book, error) {
	return repository.findOne(ctx, bson.D{{Key: FieldID, Value: id}}, "get_book_by_id")
}

// GetByISBN fetches the first document whose isbn equals isbn.
func (repository *MongoRepository) GetByISBN(ctx context.Context, isbn int64) (*Book, error) {
	return repository.findOne(ctx, bson.D{{Key: FieldISBN, Value: isbn}}, "get_book_by_isbn")
}

// Count returns the exact number of documents in the collection.
func (repository *MongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.D{})
	return count, dberr.Wrap(err, "count_books")
}

func (repository *MongoRepository) findOne(ctx context.Context, filter bson.D, action string) (*Book, error) {
	book := &Book{}
	if err := repository.collection.FindOne(ctx, filter).Decode(book); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return book, nil
}

// EnsureIndexes creates the secondary indexes used by lookups. It is idempotent.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: FieldISBN, Value: 1}},
		Options: options.Index().SetName("isbn_1"),
	})
	if err != nil {
		return fmt.Errorf("catalog: create isbn index on %s: %w", collection.Name(), err)
	}
	return nil
}
