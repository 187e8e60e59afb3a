// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                      "/path/to/config.json",
		"APP_VERSION":                 "1.2.3",
		"SERVER_ADDRESS":              "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":      "30s",
		"SERVER_SHUTDOWN_TIMEOUT":     "5s",
		"SERVER_PUBLIC_API_BASE_URL":  "http://api.example/api",
		"SERVER_PUBLIC_API_TIMEOUT":   "45s",
		"ANALYSIS_MAX_CIDRS":          "50",
		"ANALYSIS_MAX_COMPARISONS":    "200",
		"ADAPTER_CONFIG_URL":          "http://web.example/app-config.json",
		"ADAPTER_CONFIG_LOAD_TIMEOUT": "2s",
		"WORKERS_HEALTH_INTERVAL":     "1m",
		"LOG_LEVEL":                   "debug",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://api.example/api", cfg.Server.PublicAPIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.Server.PublicAPITimeout)
	assert.Equal(t, 50, cfg.Analysis.MaxCIDRs)
	assert.Equal(t, 200, cfg.Analysis.MaxComparisons)
	assert.Equal(t, "http://web.example/app-config.json", cfg.Adapter.ConfigURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.ConfigLoadTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.HealthInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"ANALYSIS_MAX_CIDRS": "many"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
