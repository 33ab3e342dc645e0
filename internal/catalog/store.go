// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the data access contract.
//
// Lookups that match nothing return an [apperr.AppError] with code NOT_FOUND.
type Repository interface {
	List(ctx context.Context) ([]*Book, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Book, error)
	GetByISBN(ctx context.Context, isbn int64) (*Book, error)
	Count(ctx context.Context) (int64, error)
}
