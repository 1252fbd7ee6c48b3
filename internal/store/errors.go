package store

import "errors"

// Sentinel errors returned by directory methods to signal well-known
// failure conditions. Callers should match against them with [errors.Is].
var (
	// ErrUserAlreadyExists is returned by Insert when a record with the
	// same case-insensitive username is already present.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned by Get, Replace, and Remove when no
	// record exists under the requested username.
	ErrUserNotFound = errors.New("user not found")
)
