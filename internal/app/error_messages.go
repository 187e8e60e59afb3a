// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server handlers and the
// command line client.
package app

const (
	// MsgInvalidRequestFormat is returned when a request body is not valid
	// JSON or does not match the expected shape.
	MsgInvalidRequestFormat = "Invalid request format"

	// MsgNoCIDRsProvided is printed by the client when analyze is called
	// without any CIDR.
	MsgNoCIDRsProvided = "no CIDRs provided"

	// MsgAPIHealthy and MsgAPIUnhealthy describe the outcome of a health check.
	MsgAPIHealthy   = "API is healthy"
	MsgAPIUnhealthy = "API is unreachable or unhealthy"
)
