// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the CIDR analysis API.
//
// It loads the runtime configuration document, builds the server adapter on
// top of it and exposes the analyze, validate, health and config commands.
// Results are printed as lipgloss tables or as JSON.
package client
