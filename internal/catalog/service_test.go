// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/bookcatalog/internal/catalog"
	"github.com/taibuivan/bookcatalog/internal/platform/apperr"
)

/*
TestParseISBN covers the accepted and rejected path segments.
*/
func TestParseISBN(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{"ten_digits", "312195516", 312195516, true},
		{"leading_zero", "0312195516", 312195516, true},
		{"all_zero", "000000000", 0, true},
		{"empty", "", 0, false},
		{"letters", "abc", 0, false},
		{"isbn_with_x", "043965548X", 0, false},
		{"negative", "-1", 0, false},
		{"plus_sign", "+1", 0, false},
		{"decimal", "3.5", 0, false},
		{"overflow", "99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ParseISBN(tt.raw)
			if !tt.valid {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, catalog.MsgBadRequestISBN, ae.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestParseID distinguishes malformed identifiers.
*/
func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := catalog.ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, raw := range []string{"", "not-a-valid-id", "123", id.Hex() + "00", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := catalog.ParseID(raw)
		ae := apperr.As(err)
		require.NotNil(t, ae, raw)
		assert.Equal(t, apperr.CodeBadRequest, ae.Code)
		assert.Equal(t, catalog.MsgBadRequestID, ae.Message)
	}
}

func TestService_GetBookByID(t *testing.T) {
	books := sampleBooks()
	repository := newMemoryRepository(books...)
	service := catalog.NewService(repository, discardLogger())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		book, err := service.GetBookByID(ctx, books[1].ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, books[1].ID, book.ID)
	})

	t.Run("well_formed_but_missing", func(t *testing.T) {
		_, err := service.GetBookByID(ctx, primitive.NewObjectID().Hex())
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeNotFound, ae.Code)
		assert.Equal(t, catalog.MsgBookIDNotFound, ae.Message)
	})

	t.Run("malformed_never_queries", func(t *testing.T) {
		before := repository.callCount("GetByID")
		_, err := service.GetBookByID(ctx, "not-a-valid-id")
		assert.True(t, apperr.IsCode(err, apperr.CodeBadRequest))
		assert.Equal(t, before, repository.callCount("GetByID"))
	})
}

func TestService_GetBookByISBN(t *testing.T) {
	repository := newMemoryRepository(sampleBooks()...)
	service := catalog.NewService(repository, discardLogger())
	ctx := context.Background()

	book, err := service.GetBookByISBN(ctx, "312195516")
	require.NoError(t, err)
	assert.Equal(t, "The Red Tent", book.Title)

	_, err = service.GetBookByISBN(ctx, "000000000")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, catalog.MsgBookNotFound, ae.Message)

	before := repository.callCount("GetByISBN")
	_, err = service.GetBookByISBN(ctx, "not-a-number")
	assert.True(t, apperr.IsCode(err, apperr.CodeBadRequest))
	assert.Equal(t, before, repository.callCount("GetByISBN"))
}

/*
TestService_QueryFailure maps driver failures on lookups to BAD_REQUEST.
*/
func TestService_QueryFailure(t *testing.T) {
	repository := newMemoryRepository()
	repository.err = apperr.Internal(errors.New("server selection error"))
	service := catalog.NewService(repository, discardLogger())

	_, err := service.GetBookByID(context.Background(), primitive.NewObjectID().Hex())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeBadRequest, ae.Code)
	assert.Equal(t, catalog.MsgBadRequestID, ae.Message)

	_, err = service.GetBookByISBN(context.Background(), "312195516")
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, catalog.MsgBadRequestISBN, ae.Message)

	_, err = service.ListBooks(context.Background())
	assert.True(t, apperr.IsCode(err, apperr.CodeInternal))
}

func TestService_CountBooks(t *testing.T) {
	repository := newMemoryRepository(sampleBooks()...)
	service := catalog.NewService(repository, discardLogger())

	count, err := service.CountBooks(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleBooks()), count)
	assert.Equal(t, 1, repository.callCount("Count"))

	repository.err = apperr.Internal(errors.New("connection reset"))
	_, err = service.CountBooks(context.Background())
	assert.Error(t, err)
}
