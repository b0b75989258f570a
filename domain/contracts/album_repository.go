package contracts

import (
	"context"

	"fotoshare/domain/gallery"
)

// AlbumRepository defines operations for Album entities and their
// photo membership relation.
type AlbumRepository interface {
	// GetByID retrieves an album by identity. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, albumID int64) (*gallery.Album, error)

	// ListByOwner retrieves every album owned by a user.
	ListByOwner(ctx context.Context, ownerID int64) ([]*gallery.Album, error)

	// Save persists an album, assigning an identity on first save.
	Save(ctx context.Context, album *gallery.Album) error

	// Delete removes an album and its membership links.
	Delete(ctx context.Context, albumID int64) error

	// DeleteByOwner removes every album owned by a user, links included.
	DeleteByOwner(ctx context.Context, ownerID int64) error

	// AddPhoto links a photo into an album. Adding an existing member is
	// a no-op.
	AddPhoto(ctx context.Context, albumID, photoID int64) error

	// RemovePhoto unlinks a photo from an album.
	RemovePhoto(ctx context.Context, albumID, photoID int64) error

	// ListPhotos retrieves the photos in an album in insertion order.
	ListPhotos(ctx context.Context, albumID int64) ([]*gallery.Photo, error)

	// RemovePhotoEverywhere unlinks a photo from all albums. Used by the
	// photo cascade.
	RemovePhotoEverywhere(ctx context.Context, photoID int64) error
}
