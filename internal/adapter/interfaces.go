// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the CIDR analysis API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that resolves the API location and default timeout
// through the runtime configuration of package appconfig before every call.
//
// Every call runs in its own cancellation scope, see [WithTimeout] and
// [WithSignal]. Non-2xx answers are returned as [*APIError], which also
// matches the sentinel errors in errors.go through [errors.Is]
// (e.g. [ErrBadRequest] for 400).
//
// Successful bodies are returned as [Payload], unmodified. Callers that want
// a models type decode it themselves with [DecodeAs].
package adapter

import (
	"context"

	"github.com/MKhiriev/cidr-viewer/internal/appconfig"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the CIDR
// analysis server.
type ServerAdapter interface {
	// AnalyzeCIDRs posts body to {apiBaseUrl}/analyze. body is sent as JSON
	// without local validation; a models.AnalysisRequest is the usual value.
	AnalyzeCIDRs(ctx context.Context, body any, opts ...CallOption) (Payload, error)

	// ValidateCIDR posts {"cidr": cidr} to {apiBaseUrl}/validate and returns
	// the range as reported by the server.
	ValidateCIDR(ctx context.Context, cidr string, opts ...CallOption) (Payload, error)

	// HealthCheck calls GET {apiBaseUrl}/health.
	HealthCheck(ctx context.Context, opts ...CallOption) (Payload, error)

	// BaseURL returns the resolved apiBaseUrl.
	BaseURL(ctx context.Context) string

	// CurrentConfig returns the resolved runtime configuration.
	CurrentConfig(ctx context.Context) *appconfig.AppConfig
}

// ConfigProvider resolves the runtime configuration. *appconfig.Loader
// implements it.
type ConfigProvider interface {
	Get(ctx context.Context) *appconfig.AppConfig
}
