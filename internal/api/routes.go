// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"
	"strings"

	"github.com/taibuivan/bookcatalog/internal/platform/respond"
)

// Route is one row of the static route table.
type Route struct {
	Method  string
	Pattern string
	// Summary is shown in the API guide served at "/". Empty hides the route.
	Summary string
	Handler http.HandlerFunc
}

// Routes returns the full route table in registration order.
func Routes(h Handlers) []Route {
	books := []Route{
		{Method: http.MethodGet, Pattern: "/books", Summary: "Get all books", Handler: h.Catalog.ListBooks},
		{Method: http.MethodGet, Pattern: "/books/id/{id}", Summary: "Get book by Id", Handler: h.Catalog.GetBookByID},
		{Method: http.MethodGet, Pattern: "/books/isbn/{isbnNr}", Summary: "Get book by Isbn", Handler: h.Catalog.GetBookByISBN},
	}

	table := []Route{
		{Method: http.MethodGet, Pattern: "/", Handler: guideHandler(books)},
	}
	table = append(table, books...)
	table = append(table,
		Route{Method: http.MethodGet, Pattern: "/health", Handler: h.Liveness},
		Route{Method: http.MethodGet, Pattern: "/ready", Handler: h.Readiness},
	)

	return table
}

// Guide is the static document served at "/".
type Guide struct {
	Endpoints []map[string]string `json:"Endpoints"`
}

var patternToExpress = strings.NewReplacer("{", ":", "}", "")

// NewGuide lists every route with a summary, displaying path parameters as ":name".
func NewGuide(routes []Route) Guide {
	endpoints := make(map[string]string, len(routes))
	for _, route := range routes {
		if route.Summary == "" {
			continue
		}
		endpoints[patternToExpress.Replace(route.Pattern)] = route.Summary
	}
	return Guide{Endpoints: []map[string]string{endpoints}}
}

func guideHandler(routes []Route) http.HandlerFunc {
	guide := NewGuide(routes)
	return func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, guide)
	}
}
