// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meibo-app/meibo/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "roster.csv", cfg.FileName)
	assert.Equal(t, 1000, cfg.MaxRecords)
	assert.False(t, cfg.StrictText)
	assert.Equal(t, time.Date(1935, 1, 1, 0, 0, 0, 0, time.UTC), cfg.MinBirth())
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), cfg.MinJoin())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MEIBO_DATA_DIR", "/var/lib/meibo")
	t.Setenv("MEIBO_FILE_NAME", "staff.csv")
	t.Setenv("MEIBO_MAX_RECORDS", "50")
	t.Setenv("MEIBO_MIN_BIRTH_DATE", "1950-06-15")
	t.Setenv("MEIBO_STRICT_TEXT", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/lib/meibo", cfg.DataDir)
	assert.Equal(t, "staff.csv", cfg.FileName)
	assert.Equal(t, 50, cfg.MaxRecords)
	assert.True(t, cfg.StrictText)
	assert.Equal(t, time.Date(1950, 6, 15, 0, 0, 0, 0, time.UTC), cfg.MinBirth())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "malformed birth bound", key: "MEIBO_MIN_BIRTH_DATE", value: "15/06/1950"},
		{name: "malformed join bound", key: "MEIBO_MIN_JOIN_DATE", value: "not-a-date"},
		{name: "zero capacity", key: "MEIBO_MAX_RECORDS", value: "0"},
		{name: "negative capacity", key: "MEIBO_MAX_RECORDS", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
