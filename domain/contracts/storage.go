package contracts

import (
	"context"
	"io"

	"fotoshare/domain/gallery"
)

// FileStore holds photo binaries keyed by stored filename. Delete is
// idempotent: deleting an object that is already gone is success.
type FileStore interface {
	// Save writes the binary and returns the stored filename.
	Save(ctx context.Context, originalFilename string, r io.Reader) (string, error)

	// Open streams a stored binary. Returns ErrNotFound if absent.
	Open(ctx context.Context, storedFilename string) (io.ReadCloser, error)

	// Delete removes a stored binary.
	Delete(ctx context.Context, storedFilename string) error
}

// ThumbnailStore holds thumbnail binaries. Same delete contract as
// FileStore. Thumbnail generation itself happens outside this system;
// the store only keeps and removes what it is given.
type ThumbnailStore interface {
	SaveThumbnail(ctx context.Context, thumbnailFilename string, r io.Reader) error
	OpenThumbnail(ctx context.Context, thumbnailFilename string) (io.ReadCloser, error)
	DeleteThumbnail(ctx context.Context, thumbnailFilename string) error
}

// OrphanFileRepository queues storage objects for post-commit deletion.
// Rows are written inside the cascade's transaction and removed once the
// corresponding binary is confirmed gone.
type OrphanFileRepository interface {
	Record(ctx context.Context, orphan *gallery.OrphanFile) error
	List(ctx context.Context) ([]*gallery.OrphanFile, error)
	Delete(ctx context.Context, orphanID int64) error
}
