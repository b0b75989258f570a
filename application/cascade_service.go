package application

import (
	"context"
	"fmt"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
)

// CascadeService is the cascade deletion coordinator. It removes a user
// or a photo together with every entity whose validity depends on it,
// inside a single transaction: dependents first, then the owning row.
//
// Authorization is the caller's responsibility; the coordinator assumes
// the delete was already permitted.
//
// Storage policy: binaries are not deleted mid-transaction. Their names
// are queued in the orphan table inside the transaction, the transaction
// commits, and only then are the binaries removed. A binary whose
// deletion fails stays queued for the reconciliation sweep, so a storage
// outage can delay cleanup but never leaves an untracked orphan and
// never aborts a committed cascade.
type CascadeService struct {
	users    contracts.UserRepository
	photos   contracts.PhotoRepository
	albums   contracts.AlbumRepository
	shares   contracts.ShareRepository
	comments contracts.CommentaryRepository
	orphans  contracts.OrphanFileRepository
	files    contracts.FileStore
	thumbs   contracts.ThumbnailStore
	tx       contracts.TxRunner
	logger   *logging.Logger
}

// NewCascadeService creates the cascade deletion coordinator.
func NewCascadeService(
	users contracts.UserRepository,
	photos contracts.PhotoRepository,
	albums contracts.AlbumRepository,
	shares contracts.ShareRepository,
	comments contracts.CommentaryRepository,
	orphans contracts.OrphanFileRepository,
	files contracts.FileStore,
	thumbs contracts.ThumbnailStore,
	tx contracts.TxRunner,
	logger *logging.Logger,
) *CascadeService {
	return &CascadeService{
		users:    users,
		photos:   photos,
		albums:   albums,
		shares:   shares,
		comments: comments,
		orphans:  orphans,
		files:    files,
		thumbs:   thumbs,
		tx:       tx,
		logger:   logger.WithComponent("cascade"),
	}
}

// DeleteUser removes a user and everything that depends on them: their
// comments everywhere, the shares they received, each owned photo with
// its dependents, their albums, and finally the user row. Returns
// contracts.ErrNotFound before any mutation if the user does not exist.
func (s *CascadeService) DeleteUser(ctx context.Context, userID int64) error {
	var queued []*gallery.OrphanFile

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, userID); err != nil {
			return err
		}

		// Comments the user wrote on anyone's photos.
		if err := s.comments.DeleteByAuthor(ctx, userID); err != nil {
			return fmt.Errorf("delete authored comments: %w", err)
		}

		// Shares the user received on anyone's photos.
		if err := s.shares.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete received shares: %w", err)
		}

		photos, err := s.photos.ListByOwner(ctx, userID)
		if err != nil {
			return fmt.Errorf("list owned photos: %w", err)
		}
		for _, photo := range photos {
			q, err := s.deletePhotoDependents(ctx, photo)
			if err != nil {
				return err
			}
			queued = append(queued, q...)
			if err := s.photos.Delete(ctx, photo.ID); err != nil {
				return fmt.Errorf("delete photo %d: %w", photo.ID, err)
			}
		}

		if err := s.albums.DeleteByOwner(ctx, userID); err != nil {
			return fmt.Errorf("delete owned albums: %w", err)
		}

		if err := s.users.Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("User cascade committed", "user_id", userID, "queued_files", len(queued))
	s.cleanupStored(ctx, queued)
	return nil
}

// DeletePhoto removes a photo with its comments, shares and album
// memberships, then the photo row. Returns contracts.ErrNotFound before
// any mutation if the photo does not exist.
func (s *CascadeService) DeletePhoto(ctx context.Context, photoID int64) error {
	var queued []*gallery.OrphanFile

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		photo, err := s.photos.GetByID(ctx, photoID)
		if err != nil {
			return err
		}

		queued, err = s.deletePhotoDependents(ctx, photo)
		if err != nil {
			return err
		}
		if err := s.photos.Delete(ctx, photo.ID); err != nil {
			return fmt.Errorf("delete photo %d: %w", photo.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Photo cascade committed", "photo_id", photoID, "queued_files", len(queued))
	s.cleanupStored(ctx, queued)
	return nil
}

// deletePhotoDependents removes everything hanging off one photo except
// the photo row itself, and queues its stored binaries for post-commit
// deletion. Runs inside the caller's transaction.
func (s *CascadeService) deletePhotoDependents(ctx context.Context, photo *gallery.Photo) ([]*gallery.OrphanFile, error) {
	if err := s.comments.DeleteByPhoto(ctx, photo.ID); err != nil {
		return nil, fmt.Errorf("delete comments of photo %d: %w", photo.ID, err)
	}
	if err := s.shares.DeleteByPhoto(ctx, photo.ID); err != nil {
		return nil, fmt.Errorf("delete shares of photo %d: %w", photo.ID, err)
	}
	if err := s.albums.RemovePhotoEverywhere(ctx, photo.ID); err != nil {
		return nil, fmt.Errorf("unlink photo %d from albums: %w", photo.ID, err)
	}

	var queued []*gallery.OrphanFile
	if photo.StoredFilename != "" {
		orphan := &gallery.OrphanFile{Kind: gallery.OrphanFileObject, Name: photo.StoredFilename}
		if err := s.orphans.Record(ctx, orphan); err != nil {
			return nil, fmt.Errorf("queue stored file of photo %d: %w", photo.ID, err)
		}
		queued = append(queued, orphan)
	}
	if photo.ThumbnailFilename != "" {
		orphan := &gallery.OrphanFile{Kind: gallery.OrphanThumbnail, Name: photo.ThumbnailFilename}
		if err := s.orphans.Record(ctx, orphan); err != nil {
			return nil, fmt.Errorf("queue thumbnail of photo %d: %w", photo.ID, err)
		}
		queued = append(queued, orphan)
	}
	return queued, nil
}

// cleanupStored deletes queued binaries after the cascade committed.
// Failures are logged and the row stays queued for the sweep.
func (s *CascadeService) cleanupStored(ctx context.Context, queued []*gallery.OrphanFile) {
	for _, orphan := range queued {
		if err := deleteStoredObject(ctx, s.files, s.thumbs, orphan); err != nil {
			s.logger.Warn("Storage delete failed, left queued",
				"kind", orphan.Kind.String(), "name", orphan.Name, "error", err)
			continue
		}
		if err := s.orphans.Delete(ctx, orphan.ID); err != nil {
			// The binary is gone; the sweep will retry the delete and
			// treat the missing object as success.
			s.logger.Warn("Orphan dequeue failed", "name", orphan.Name, "error", err)
		}
	}
}

func deleteStoredObject(ctx context.Context, files contracts.FileStore, thumbs contracts.ThumbnailStore, orphan *gallery.OrphanFile) error {
	if orphan.Kind == gallery.OrphanThumbnail {
		return thumbs.DeleteThumbnail(ctx, orphan.Name)
	}
	return files.Delete(ctx, orphan.Name)
}
