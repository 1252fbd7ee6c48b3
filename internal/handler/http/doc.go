// Package http implements the HTTP transport layer of the user directory.
//
// It exposes route wiring, request handlers, and the middleware pipeline
// of the REST API. Cross-cutting concerns are layered in a fixed order:
// trace-ID injection, the error boundary, authentication, access logging,
// and metrics collection all run before a request reaches a route handler,
// and observe the response on the way back out in reverse order.
package http
