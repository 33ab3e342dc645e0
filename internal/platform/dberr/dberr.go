// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/bookcatalog/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried document doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// 2. Deadlines and server selection timeouts
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		unavailable := apperr.ServiceUnavailable("Database did not respond in time")
		unavailable.Cause = fmt.Errorf("%s: %w", action, err)
		return unavailable
	}

	// 3. Everything else is an unexpected driver failure
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
