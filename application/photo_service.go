package application

import (
	"context"
	"io"
	"strings"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
)

// PhotoUpload carries the metadata and binary of a new photo. Multipart
// parsing and thumbnail generation happen outside this system; the
// service receives an already-extracted stream.
type PhotoUpload struct {
	Title            string
	Description      string
	Visibility       gallery.Visibility
	ContentType      string
	OriginalFilename string
	Data             io.Reader
}

// PhotoUpdate carries an edit to photo metadata. Nil fields are left
// unchanged.
type PhotoUpdate struct {
	Title       *string
	Description *string
	Visibility  *gallery.Visibility
}

// PhotoService manages the photo lifecycle around the resolver and the
// cascade coordinator.
type PhotoService struct {
	access  *AccessService
	cascade *CascadeService
	photos  contracts.PhotoRepository
	files   contracts.FileStore
	logger  *logging.Logger
}

// NewPhotoService creates the photo service.
func NewPhotoService(
	access *AccessService,
	cascade *CascadeService,
	photos contracts.PhotoRepository,
	files contracts.FileStore,
	logger *logging.Logger,
) *PhotoService {
	return &PhotoService{
		access:  access,
		cascade: cascade,
		photos:  photos,
		files:   files,
		logger:  logger.WithComponent("photo"),
	}
}

// Get returns the photo if the principal may read it. Distinguishes
// contracts.ErrNotFound from contracts.ErrForbidden so the caller can
// present the right denial.
func (s *PhotoService) Get(ctx context.Context, principal gallery.Principal, photoID int64) (*gallery.Photo, error) {
	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.access.CanAccessPhoto(ctx, principal, photoID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, contracts.ErrForbidden
	}
	return photo, nil
}

// OpenFile streams the photo's stored binary, access-checked.
func (s *PhotoService) OpenFile(ctx context.Context, principal gallery.Principal, photoID int64) (*gallery.Photo, io.ReadCloser, error) {
	photo, err := s.Get(ctx, principal, photoID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.files.Open(ctx, photo.StoredFilename)
	if err != nil {
		return nil, nil, err
	}
	return photo, rc, nil
}

// ListByOwner returns the principal's own photos.
func (s *PhotoService) ListByOwner(ctx context.Context, principal gallery.Principal) ([]*gallery.Photo, error) {
	userID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}
	return s.photos.ListByOwner(ctx, userID)
}

// ListAccessible returns every photo the principal may read.
func (s *PhotoService) ListAccessible(ctx context.Context, principal gallery.Principal) ([]*gallery.Photo, error) {
	return s.photos.ListAccessible(ctx, principal)
}

// Upload stores the binary and creates the photo record owned by the
// principal.
func (s *PhotoService) Upload(ctx context.Context, principal gallery.Principal, upload PhotoUpload) (*gallery.Photo, error) {
	userID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}
	if upload.Data == nil || strings.TrimSpace(upload.OriginalFilename) == "" {
		return nil, contracts.ErrInvalidInput
	}

	storedName, err := s.files.Save(ctx, upload.OriginalFilename, upload.Data)
	if err != nil {
		return nil, err
	}

	photo := &gallery.Photo{
		OwnerID:          userID,
		Visibility:       upload.Visibility,
		Title:            upload.Title,
		Description:      upload.Description,
		ContentType:      upload.ContentType,
		OriginalFilename: upload.OriginalFilename,
		StoredFilename:   storedName,
	}
	if err := s.photos.Save(ctx, photo); err != nil {
		// The record never existed; the binary must not outlive it.
		if delErr := s.files.Delete(ctx, storedName); delErr != nil {
			s.logger.Warn("Failed to remove binary of failed upload",
				"stored_filename", storedName, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info("Photo uploaded", "photo_id", photo.ID, "owner_id", userID)
	return photo, nil
}

// Update applies a metadata edit. Requires edit permission (owner or an
// ADMIN share).
func (s *PhotoService) Update(ctx context.Context, principal gallery.Principal, photoID int64, update PhotoUpdate) (*gallery.Photo, error) {
	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.access.CanEditPhoto(ctx, principal, photoID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, contracts.ErrForbidden
	}

	if update.Title != nil {
		photo.Title = *update.Title
	}
	if update.Description != nil {
		photo.Description = *update.Description
	}
	if update.Visibility != nil {
		photo.Visibility = *update.Visibility
	}

	if err := s.photos.Save(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// Delete removes the photo and its dependents. Owner only; no share
// level reaches deletion.
func (s *PhotoService) Delete(ctx context.Context, principal gallery.Principal, photoID int64) error {
	if _, err := s.photos.GetByID(ctx, photoID); err != nil {
		return err
	}

	allowed, err := s.access.CanDeletePhoto(ctx, principal, photoID)
	if err != nil {
		return err
	}
	if !allowed {
		return contracts.ErrForbidden
	}

	return s.cascade.DeletePhoto(ctx, photoID)
}
