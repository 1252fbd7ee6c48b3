package models

// User is a single record of the user directory.
//
// The wire format uses PascalCase field names (UserName, UserAge) to stay
// compatible with existing clients of the directory API.
type User struct {
	// UserName uniquely identifies the user within the directory.
	// Directory lookups treat the name case-insensitively, so "Alice" and
	// "alice" refer to the same record.
	UserName string `json:"UserName"`

	// UserAge is the user's age in full years. Valid values are 0..120
	// inclusive; the validators package enforces the range.
	UserAge int `json:"UserAge"`
}
