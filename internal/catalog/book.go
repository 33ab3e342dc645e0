// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the read-only book catalogue.

It owns the book record, its MongoDB repository, the optional Redis read-through
cache, the service that parses lookup keys, and the HTTP handlers.

Lookups:

  - List: every record in natural collection order.
  - By identifier: the store-assigned ObjectID (24 hex characters).
  - By ISBN: exact match on the numeric 10-digit ISBN field.
*/
package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book is a single catalogue record.
//
// JSON and BSON field names are identical so stored documents and API
// responses share one shape. BookID comes from the dataset and is not the
// record identifier; ID is assigned by the store on insert.
type Book struct {
	ID               primitive.ObjectID `json:"_id"                bson:"_id,omitempty"`
	BookID           int                `json:"bookID"             bson:"bookID"`
	Title            string             `json:"title"              bson:"title"`
	Authors          string             `json:"authors"            bson:"authors"`
	AverageRating    float64            `json:"average_rating"     bson:"average_rating"`
	ISBN             int64              `json:"isbn"               bson:"isbn"`
	ISBN13           int64              `json:"isbn13"             bson:"isbn13"`
	LanguageCode     string             `json:"languageCode"       bson:"languageCode"`
	NumPages         int                `json:"numPages"           bson:"numPages"`
	RatingsCount     int                `json:"ratings_count"      bson:"ratings_count"`
	TextReviewsCount int                `json:"text_reviews_count" bson:"text_reviews_count"`
}

// Field names used in queries and indexes.
const (
	FieldID   = "_id"
	FieldISBN = "isbn"
)
