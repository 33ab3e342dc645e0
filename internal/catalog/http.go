// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookcatalog/internal/platform/respond"
)

// URL parameter names used by the lookup routes.
const (
	ParamID   = "id"
	ParamISBN = "isbnNr"
)

// # Handler Implementation

// Handler implements the HTTP layer for the catalogue lookups.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalogue [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
GET /books.

Description: Returns every book in the catalogue as a bare JSON array.

Response:
  - 200: []Book: All records, possibly empty
  - 500: INTERNAL_ERROR: The query failed
*/
func (handler *Handler) ListBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

/*
GET /books/id/{id}.

Description: Retrieves one book by its store-assigned identifier.

Request:
  - id: string (24 hex characters)

Response:
  - 200: Book: Success
  - 400: BAD_REQUEST: "Bad request!" for a malformed identifier or a failed query
  - 404: NOT_FOUND: "BookId not found"
*/
func (handler *Handler) GetBookByID(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.GetBookByID(request.Context(), chi.URLParam(request, ParamID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

/*
GET /books/isbn/{isbnNr}.

Description: Retrieves the first book whose isbn equals the numeric value of isbnNr.

Request:
  - isbnNr: string (ASCII digits only)

Response:
  - 200: Book: Success
  - 400: BAD_REQUEST: "Bad request" for non-numeric input or a failed query
  - 404: NOT_FOUND: "Book not found"
*/
func (handler *Handler) GetBookByISBN(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.GetBookByISBN(request.Context(), chi.URLParam(request, ParamISBN))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}
