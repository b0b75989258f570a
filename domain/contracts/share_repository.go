package contracts

import (
	"context"

	"fotoshare/domain/gallery"
)

// ShareRepository is the share registry: at most one grant per
// (photo, user) pair. Both the resolver and the cascade coordinator
// depend on it.
type ShareRepository interface {
	// GetByPhotoAndUser retrieves the grant for a pair. Returns
	// ErrNotFound if no grant exists.
	GetByPhotoAndUser(ctx context.Context, photoID, userID int64) (*gallery.Share, error)

	// ListByPhoto retrieves every grant on a photo.
	ListByPhoto(ctx context.Context, photoID int64) ([]*gallery.Share, error)

	// Save persists a grant. Saving an existing (photo, user) pair
	// replaces its permission level.
	Save(ctx context.Context, share *gallery.Share) error

	// DeleteByPhotoAndUser removes the grant for a pair. Removing an
	// absent grant is a no-op.
	DeleteByPhotoAndUser(ctx context.Context, photoID, userID int64) error

	// DeleteByPhoto removes every grant on a photo.
	DeleteByPhoto(ctx context.Context, photoID int64) error

	// DeleteByUser removes every grant received by a user.
	DeleteByUser(ctx context.Context, userID int64) error
}
