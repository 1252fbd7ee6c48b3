// Package store implements the in-memory user directory.
//
// The directory is the only shared mutable state in the service. It maps
// case-insensitive usernames to user records and guarantees atomic
// check-then-insert and remove under concurrent access.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/models"
)

type memoryDirectory struct {
	mu     sync.RWMutex
	users  map[string]models.User
	logger *logger.Logger
}

// NewUserDirectory creates an empty in-memory UserDirectory.
func NewUserDirectory(logger *logger.Logger) UserDirectory {
	logger.Debug().Msg("UserDirectory created")
	return &memoryDirectory{
		users:  make(map[string]models.User),
		logger: logger,
	}
}

// directoryKey normalizes a username into the map key. All lookups go
// through this function so that "Alice" and "alice" address the same record.
func directoryKey(name string) string {
	return strings.ToLower(name)
}

// List returns a snapshot copy of all records. Order is unspecified.
func (d *memoryDirectory) List(ctx context.Context) []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]models.User, 0, len(d.users))
	for _, user := range d.users {
		users = append(users, user)
	}

	return users
}

// Get looks up a user by name, case-insensitively.
//
// The lookup matches the record's UserName field, not the map key. The two
// diverge after a rename through Replace: reads follow the current name,
// while Insert, Replace, and Remove keep addressing the original key.
// Returns ErrUserNotFound if no record carries the given name.
func (d *memoryDirectory) Get(ctx context.Context, name string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, user := range d.users {
		if strings.EqualFold(user.UserName, name) {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// Insert adds a new record keyed by user.UserName.
//
// The existence check and the insertion happen under one write lock, so
// concurrent inserts of the same name cannot both succeed. Returns
// ErrUserAlreadyExists if the key is taken; the stored record is never
// overwritten.
func (d *memoryDirectory) Insert(ctx context.Context, user models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := directoryKey(user.UserName)
	if _, exists := d.users[key]; exists {
		return ErrUserAlreadyExists
	}
	d.users[key] = user

	return nil
}

// Replace overwrites the UserName and UserAge fields of the record stored
// under name.
//
// The map key is NOT re-derived from the new UserName: after a rename the
// record is still addressed by its original key. Returns ErrUserNotFound
// if no record exists under name.
func (d *memoryDirectory) Replace(ctx context.Context, name string, user models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := directoryKey(name)
	record, exists := d.users[key]
	if !exists {
		return ErrUserNotFound
	}

	record.UserName = user.UserName
	record.UserAge = user.UserAge
	d.users[key] = record

	return nil
}

// Remove deletes the record stored under name.
//
// Returns ErrUserNotFound if no record exists, which makes a repeated
// remove of the same name observably fail rather than silently succeed.
func (d *memoryDirectory) Remove(ctx context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := directoryKey(name)
	if _, exists := d.users[key]; !exists {
		return ErrUserNotFound
	}
	delete(d.users, key)

	return nil
}

// Len reports the current number of records.
func (d *memoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.users)
}

// Seed installs the startup records. Existing records with the same names
// are left untouched.
func (d *memoryDirectory) Seed(ctx context.Context) {
	seed := []models.User{
		{UserName: "Alice", UserAge: 25},
		{UserName: "Bob", UserAge: 30},
		{UserName: "Charlie", UserAge: 35},
	}

	for _, user := range seed {
		if err := d.Insert(ctx, user); err != nil {
			d.logger.Warn().Str("user", user.UserName).Msg("seed record already present")
		}
	}

	d.logger.Info().Int("users", d.Len()).Msg("user directory seeded")
}
