package validators

import "errors"

// Sentinel validation errors. Their messages are written verbatim into
// 400 response bodies, so they are phrased for API clients rather than
// for logs.
var (
	// ErrNameEmpty indicates a blank (or whitespace-only) username.
	ErrNameEmpty = errors.New("username must not be empty")

	// ErrNameTooShort indicates a trimmed username shorter than
	// MinUserNameLength characters.
	ErrNameTooShort = errors.New("username must be at least 3 characters long")

	// ErrNameContainsWhitespace indicates a username with embedded
	// whitespace characters.
	ErrNameContainsWhitespace = errors.New("username must not contain whitespace")

	// ErrAgeOutOfRange indicates an age outside the accepted 0..120 range.
	ErrAgeOutOfRange = errors.New("age must be between 0 and 120")
)
