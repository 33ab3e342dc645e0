// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/bookcatalog/internal/platform/apperr"
)

// Client-facing messages for the lookup routes.
const (
	MsgBookIDNotFound = "BookId not found"
	MsgBookNotFound   = "Book not found"
	MsgBadRequestID   = "Bad request!"
	MsgBadRequestISBN = "Bad request"
)

var errInvalidISBN = errors.New("isbn must be a non-negative base-10 integer")

// # Service Layer

// Service resolves catalogue lookups. It turns raw path segments into typed
// keys and maps repository failures onto the client-facing error shapes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] over the given repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Book Lookups

// ListBooks returns every record in natural collection order.
func (service *Service) ListBooks(ctx context.Context) ([]*Book, error) {
	return service.repo.List(ctx)
}

// CountBooks reports how many records the catalogue currently holds.
func (service *Service) CountBooks(ctx context.Context) (int64, error) {
	return service.repo.Count(ctx)
}

// GetBookByID parses rawID as an ObjectID and loads the matching record.
//
// A malformed identifier or a failed query yields BAD_REQUEST; a well-formed
// identifier with no match yields NOT_FOUND.
func (service *Service) GetBookByID(ctx context.Context, rawID string) (*Book, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	book, err := service.repo.GetByID(ctx, id)
	return book, service.classify(ctx, err, MsgBookIDNotFound, MsgBadRequestID)
}

// GetBookByISBN parses rawISBN and loads the first record whose isbn matches exactly.
//
// Non-numeric input is rejected with BAD_REQUEST before any query runs.
func (service *Service) GetBookByISBN(ctx context.Context, rawISBN string) (*Book, error) {
	isbn, err := ParseISBN(rawISBN)
	if err != nil {
		return nil, err
	}

	book, err := service.repo.GetByISBN(ctx, isbn)
	return book, service.classify(ctx, err, MsgBookNotFound, MsgBadRequestISBN)
}

// classify maps repository errors onto the two lookup error shapes.
func (service *Service) classify(ctx context.Context, err error, notFoundMsg, badRequestMsg string) error {
	if err == nil {
		return nil
	}

	if apperr.IsCode(err, apperr.CodeNotFound) {
		return apperr.NotFound("Book").WithMessage(notFoundMsg)
	}

	service.logger.WarnContext(ctx, "book_lookup_failed", slog.Any("error", err))
	return apperr.BadRequest(badRequestMsg, err)
}

// ParseID converts a path segment into an ObjectID.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest(MsgBadRequestID, err)
	}
	return id, nil
}

// ParseISBN converts a path segment into the numeric ISBN used by the store.
//
// Only ASCII digits are accepted; signs, spaces, and values beyond int64 fail.
// Leading zeros are allowed, so "0312195516" and "312195516" are the same ISBN.
func ParseISBN(raw string) (int64, error) {
	if raw == "" {
		return 0, apperr.BadRequest(MsgBadRequestISBN, errInvalidISBN)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, apperr.BadRequest(MsgBadRequestISBN, errInvalidISBN)
		}
	}

	isbn, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest(MsgBadRequestISBN, err)
	}
	return isbn, nil
}
