package contracts

import (
	"context"

	"fotoshare/domain/gallery"
)

// PhotoRepository defines operations for Photo entities.
type PhotoRepository interface {
	// GetByID retrieves a photo by identity. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, photoID int64) (*gallery.Photo, error)

	// ListByOwner retrieves every photo owned by a user.
	ListByOwner(ctx context.Context, ownerID int64) ([]*gallery.Photo, error)

	// ListAccessible retrieves every photo the principal may read:
	// public photos, owned photos, and photos shared with the principal.
	ListAccessible(ctx context.Context, principal gallery.Principal) ([]*gallery.Photo, error)

	// Save persists a photo, assigning an identity on first save.
	Save(ctx context.Context, photo *gallery.Photo) error

	// Delete removes a photo row only.
	Delete(ctx context.Context, photoID int64) error
}
