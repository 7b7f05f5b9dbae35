// Package http implements the HTTP transport layer of the blob server.
//
// It exposes route wiring, request handlers, and middleware for the blob
// API. Cross-cutting concerns such as authentication, request tracing and
// access logging are handled in this package before requests reach the
// storage layer.
package http
