// Package server wires and runs the HTTP server of the CIDR analysis API.
//
// It covers startup, signal handling, and graceful shutdown bounded by the
// configured shutdown timeout.
package server
