// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookcatalog/internal/platform/mongodb"
)

/*
TestDatabaseName covers override, URI path, and fallback resolution.
*/
func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		override string
		want     string
	}{
		{"path", "mongodb://localhost/project-mongo", "", "project-mongo"},
		{"path_with_port", "mongodb://db:27017/catalog?retryWrites=true", "", "catalog"},
		{"no_path", "mongodb://localhost:27017", "", mongodb.DefaultDatabase},
		{"override", "mongodb://localhost/project-mongo", "library", "library"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mongodb.DatabaseName(tt.uri, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestDatabaseName_InvalidURI rejects a non-mongodb scheme.
*/
func TestDatabaseName_InvalidURI(t *testing.T) {
	_, err := mongodb.DatabaseName("postgres://localhost/books", "")
	assert.Error(t, err)
}
