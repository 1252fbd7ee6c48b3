// Package validators contains pure validation functions for the user
// directory. Validators have no side effects and are invoked identically
// on the create and update paths.
package validators

import (
	"strings"
	"unicode"
)

const (
	// MinUserNameLength is the minimum accepted length of a trimmed username.
	MinUserNameLength = 3

	// MinUserAge and MaxUserAge bound the accepted age range, inclusive.
	MinUserAge = 0
	MaxUserAge = 120
)

// ValidateUser checks the username and age constraints of a candidate
// record.
//
// It returns the first violated constraint as one of the sentinel errors
// declared in this package, checked in this order:
//   - ErrNameEmpty               — the name is blank after trimming;
//   - ErrNameContainsWhitespace  — any rune of the name is whitespace;
//   - ErrNameTooShort            — the trimmed name is shorter than
//     MinUserNameLength;
//   - ErrAgeOutOfRange           — the age is outside [MinUserAge, MaxUserAge].
func ValidateUser(name string, age int) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return ErrNameEmpty
	}

	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrNameContainsWhitespace
	}

	if len([]rune(trimmed)) < MinUserNameLength {
		return ErrNameTooShort
	}

	if age < MinUserAge || age > MaxUserAge {
		return ErrAgeOutOfRange
	}

	return nil
}
