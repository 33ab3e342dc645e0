// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/bookcatalog/internal/catalog"
	"github.com/taibuivan/bookcatalog/internal/platform/dberr"
)

// memoryRepository is an in-memory [catalog.Repository] used by the tests.
type memoryRepository struct {
	mu    sync.Mutex
	books []*catalog.Book
	err   error
	calls map[string]int
}

func newMemoryRepository(books ...*catalog.Book) *memoryRepository {
	return &memoryRepository{books: books, calls: map[string]int{}}
}

func (repository *memoryRepository) record(name string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.calls[name]++
	return repository.err
}

func (repository *memoryRepository) callCount(name string) int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.calls[name]
}

func (repository *memoryRepository) List(context.Context) ([]*catalog.Book, error) {
	if err := repository.record("List"); err != nil {
		return nil, err
	}
	out := make([]*catalog.Book, len(repository.books))
	copy(out, repository.books)
	return out, nil
}

func (repository *memoryRepository) GetByID(_ context.Context, id primitive.ObjectID) (*catalog.Book, error) {
	if err := repository.record("GetByID"); err != nil {
		return nil, err
	}
	for _, book := range repository.books {
		if book.ID == id {
			return book, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) GetByISBN(_ context.Context, isbn int64) (*catalog.Book, error) {
	if err := repository.record("GetByISBN"); err != nil {
		return nil, err
	}
	for _, book := range repository.books {
		if book.ISBN == isbn {
			return book, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) Count(context.Context) (int64, error) {
	if err := repository.record("Count"); err != nil {
		return 0, err
	}
	return int64(len(repository.books)), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleBooks() []*catalog.Book {
	return []*catalog.Book{
		{
			ID:               primitive.NewObjectID(),
			BookID:           1,
			Title:            "Harry Potter and the Half-Blood Prince (Harry Potter  #6)",
			Authors:          "J.K. Rowling-Mary GrandPré",
			AverageRating:    4.56,
			ISBN:             439785960,
			ISBN13:           9780439785969,
			LanguageCode:     "eng",
			NumPages:         652,
			RatingsCount:     1944099,
			TextReviewsCount: 26249,
		},
		{
			ID:               primitive.NewObjectID(),
			BookID:           40,
			Title:            "The Red Tent",
			Authors:          "Anita Diamant",
			AverageRating:    4.17,
			ISBN:             312195516,
			ISBN13:           9780312195519,
			LanguageCode:     "eng",
			NumPages:         321,
			RatingsCount:     499283,
			TextReviewsCount: 12346,
		},
	}
}
