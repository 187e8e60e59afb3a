// Package http implements the HTTP transport of the CIDR analysis server.
//
// It wires the chi router, the request handlers of the /api endpoints, the
// runtime configuration document served at /app-config.json and the
// Prometheus scrape endpoint. Cross-cutting concerns such as request tracing,
// access logging, CORS, request metrics and response compression are handled
// by middleware before requests reach the service layer.
package http
