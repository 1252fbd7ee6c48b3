// Package models defines the data transfer objects shared between the
// store, service, and HTTP transport layers of the user directory.
package models

// ErrorResponse is the JSON body written for every failed request.
//
// Details is populated only for 500 responses produced by the error
// boundary middleware, where it carries the recovered fault description.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
