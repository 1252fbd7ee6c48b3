// Package server owns the lifecycle of the inbound HTTP transport:
// listening, signal handling, and graceful shutdown.
package server
