// Package app contains shared application-layer constants used across the
// user-directory server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgAuthTokenMissing is returned when a request arrives without an
	// "Authorization" header.
	MsgAuthTokenMissing = "Authorization token is missing."

	// MsgAuthTokenRejected is returned when the authentication middleware
	// rejects the presented token.
	MsgAuthTokenRejected = "Invalid or expired token."

	// MsgUserAlreadyExists is returned when a create request targets a
	// username that is already taken (case-insensitively).
	MsgUserAlreadyExists = "A user with the same username already exists."

	// MsgInvalidJSON is returned when the request body cannot be decoded
	// into the expected DTO.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure is recovered at the error boundary.
	MsgInternalServerError = "internal server error"
)
