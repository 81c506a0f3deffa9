// Package http implements the HTTP transport layer of the courses API.
//
// It wires the chi router, the Basic Auth middleware, request tracing and
// access logging, and the error normalizer that turns service errors into
// JSON responses. Route handlers parse requests and delegate to the service
// layer; they hold no state of their own.
package http
