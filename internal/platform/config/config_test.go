// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookcatalog/internal/platform/config"
)

/*
TestParse_Defaults checks the values used when nothing is set.
*/
func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost/project-mongo", cfg.MongoURL)
	assert.Equal(t, "books", cfg.MongoCollection)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.ShouldSeed())
	assert.False(t, cfg.CacheEnabled())
	assert.True(t, cfg.IsDevelopment())
}

/*
TestParse_Overrides checks that every variable is honoured.
*/
func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse(env.Options{Environment: map[string]string{
		"PORT":             "9000",
		"MONGO_URL":        "mongodb://db:27017/catalog",
		"MONGO_COLLECTION": "library",
		"RESET_DB":         "true",
		"REDIS_URL":        "redis://cache:6379/0",
		"CACHE_TTL":        "30s",
		"ENVIRONMENT":      "production",
	}})
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "mongodb://db:27017/catalog", cfg.MongoURL)
	assert.Equal(t, "library", cfg.MongoCollection)
	assert.True(t, cfg.ShouldSeed())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
}

/*
TestParse_ResetFlagPresence treats any non-empty value as set.
*/
func TestParse_ResetFlagPresence(t *testing.T) {
	tests := []struct {
		name  string
		value string
		seed  bool
	}{
		{"empty", "", false},
		{"one", "1", true},
		{"word_false", "false", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse(env.Options{Environment: map[string]string{"RESET_DB": tt.value}})
			require.NoError(t, err)
			assert.Equal(t, tt.seed, cfg.ShouldSeed())
		})
	}
}

/*
TestParse_InvalidTTL rejects malformed and non-positive durations.
*/
func TestParse_InvalidTTL(t *testing.T) {
	_, err := config.Parse(env.Options{Environment: map[string]string{"CACHE_TTL": "soon"}})
	assert.Error(t, err)

	_, err = config.Parse(env.Options{Environment: map[string]string{"CACHE_TTL": "0s"}})
	assert.Error(t, err)
}
