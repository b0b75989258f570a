package contracts

import (
	"context"

	"fotoshare/domain/gallery"
)

// UserRepository defines operations for User entities.
type UserRepository interface {
	// GetByID retrieves a user by identity. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, userID int64) (*gallery.User, error)

	// GetByUsername retrieves a user by unique username.
	GetByUsername(ctx context.Context, username string) (*gallery.User, error)

	// GetByEmail retrieves a user by unique email.
	GetByEmail(ctx context.Context, email string) (*gallery.User, error)

	// Save persists a user, assigning an identity on first save.
	Save(ctx context.Context, user *gallery.User) error

	// List retrieves all users.
	List(ctx context.Context) ([]*gallery.User, error)

	// Delete removes a user row. It does not touch dependents; that is
	// the cascade coordinator's job.
	Delete(ctx context.Context, userID int64) error
}
