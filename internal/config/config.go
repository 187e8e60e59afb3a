// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// cidr-viewer binaries. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds build and release metadata.
	App App `envPrefix:"APP_"`

	// Server holds the listener, timeouts, and the values published to
	// clients through /app-config.json.
	Server Server `envPrefix:"SERVER_"`

	// Analysis holds the limits applied to CIDR analysis requests.
	Analysis Analysis `envPrefix:"ANALYSIS_"`

	// Adapter holds the client-side settings used to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Logging holds the log level shared by both binaries.
	Logging Logging `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level metadata.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080" or ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// PublicAPIBaseURL is the apiBaseUrl published in /app-config.json.
	// Env: SERVER_PUBLIC_API_BASE_URL
	PublicAPIBaseURL string `env:"PUBLIC_API_BASE_URL"`

	// PublicAPITimeout is the apiTimeout published in /app-config.json.
	// Env: SERVER_PUBLIC_API_TIMEOUT
	PublicAPITimeout time.Duration `env:"PUBLIC_API_TIMEOUT"`
}

// Analysis holds limits for the CIDR analysis service.
type Analysis struct {
	// MaxCIDRs is the largest number of CIDR strings accepted in one
	// analysis request, counted across all lists.
	// Env: ANALYSIS_MAX_CIDRS
	MaxCIDRs int `env:"MAX_CIDRS"`

	// MaxComparisons caps the pairwise overlap checks of one analysis.
	// Env: ANALYSIS_MAX_COMPARISONS
	MaxComparisons int `env:"MAX_COMPARISONS"`
}

// Adapter holds the settings the client uses to find and reach the API.
type Adapter struct {
	// ConfigURL locates the runtime configuration document. Either an
	// http(s) URL or a path to a local JSON file.
	// Env: ADAPTER_CONFIG_URL
	ConfigURL string `env:"CONFIG_URL"`

	// ConfigLoadTimeout bounds fetching the runtime configuration document.
	// Env: ADAPTER_CONFIG_LOAD_TIMEOUT
	ConfigLoadTimeout time.Duration `env:"CONFIG_LOAD_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is the polling period of the client health monitor.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Logging holds the log output settings.
type Logging struct {
	// Level is one of "debug", "info", "warn", "error".
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the process arguments, the environment, the optional JSON file and
// the built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
