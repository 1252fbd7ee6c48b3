package http

import "errors"

// Sentinel errors raised by the authentication middleware. They are used
// for log entries; the response bodies carry the client-facing messages
// from the app package.
var (
	// ErrEmptyAuthorizationHeader is logged when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrTokenRejected is logged when the presented token fails the
	// middleware's comparison against the configured value.
	ErrTokenRejected = errors.New("token rejected")
)
