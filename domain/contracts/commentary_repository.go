package contracts

import (
	"context"

	"fotoshare/domain/gallery"
)

// CommentaryRepository defines operations for Commentary entities.
type CommentaryRepository interface {
	// GetByID retrieves a comment by identity. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, commentID int64) (*gallery.Commentary, error)

	// ListByPhoto retrieves the comments on a photo, oldest first.
	ListByPhoto(ctx context.Context, photoID int64) ([]*gallery.Commentary, error)

	// Save persists a comment, assigning an identity on first save.
	Save(ctx context.Context, comment *gallery.Commentary) error

	// Delete removes a single comment.
	Delete(ctx context.Context, commentID int64) error

	// DeleteByPhoto removes every comment on a photo.
	DeleteByPhoto(ctx context.Context, photoID int64) error

	// DeleteByAuthor removes every comment a user has written, across
	// all photos.
	DeleteByAuthor(ctx context.Context, authorID int64) error
}
