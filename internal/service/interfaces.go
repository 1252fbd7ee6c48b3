package service

import (
	"context"

	"github.com/adushkin/userdir/models"
)

// UserService exposes the directory operations consumed by the HTTP
// handlers. All failures are sentinel errors from the store and
// validators packages; callers match them with errors.Is.
type UserService interface {
	// List returns all records in unspecified order.
	List(ctx context.Context) []models.User

	// Get returns the record stored under name or store.ErrUserNotFound.
	Get(ctx context.Context, name string) (models.User, error)

	// Create validates user and inserts it. Fails with a validators
	// sentinel on bad input or store.ErrUserAlreadyExists on a duplicate
	// (case-insensitive) name.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update validates user and overwrites the fields of the record
	// stored under name, keeping its directory key. Fails with a
	// validators sentinel or store.ErrUserNotFound.
	Update(ctx context.Context, name string, user models.User) error

	// Delete removes the record stored under name or fails with
	// store.ErrUserNotFound.
	Delete(ctx context.Context, name string) error
}
