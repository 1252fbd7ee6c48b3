package store

import (
	"context"

	"github.com/adushkin/userdir/models"
)

// UserDirectory is the storage contract consumed by the service layer.
//
// All methods are safe for concurrent use. Lookups, inserts, and removals
// treat usernames case-insensitively. The ctx parameter is accepted for
// interface symmetry with other storage backends; the in-memory
// implementation never blocks on it.
type UserDirectory interface {
	// List returns a snapshot of all records in unspecified order.
	List(ctx context.Context) []models.User

	// Get returns the record whose UserName matches name
	// (case-insensitively) or ErrUserNotFound. Reads match the name field,
	// so a renamed record is found under its new name even though write
	// operations keep addressing the original key.
	Get(ctx context.Context, name string) (models.User, error)

	// Insert atomically adds a record keyed by user.UserName, failing with
	// ErrUserAlreadyExists when the key is taken.
	Insert(ctx context.Context, user models.User) error

	// Replace overwrites the fields of the record stored under name
	// without re-keying it, or fails with ErrUserNotFound.
	Replace(ctx context.Context, name string, user models.User) error

	// Remove deletes the record stored under name or fails with
	// ErrUserNotFound.
	Remove(ctx context.Context, name string) error

	// Len reports the current number of records.
	Len() int

	// Seed installs the startup records.
	Seed(ctx context.Context)
}
