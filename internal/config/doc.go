// Package config provides configuration loading, merging, and validation
// facilities for the cidr-viewer binaries.
//
// Configuration is assembled from multiple sources. Sources are merged in the
// order below and the first source that sets a field wins:
//  1. Command-line flags (or CLI overrides for the client)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command line client.
//
// This package configures the processes themselves. The runtime document
// served at /app-config.json and consumed by API clients is handled by
// package appconfig.
package config
