package application

import (
	"context"
	"strings"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// AlbumService manages albums and their photo membership. Every
// operation here is owner-gated; albums have no sharing primitive.
type AlbumService struct {
	access *AccessService
	albums contracts.AlbumRepository
	photos contracts.PhotoRepository
}

// NewAlbumService creates the album service.
func NewAlbumService(access *AccessService, albums contracts.AlbumRepository, photos contracts.PhotoRepository) *AlbumService {
	return &AlbumService{access: access, albums: albums, photos: photos}
}

// Create makes a new album owned by the principal.
func (s *AlbumService) Create(ctx context.Context, principal gallery.Principal, name, description string) (*gallery.Album, error) {
	userID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, contracts.ErrInvalidInput
	}

	album := &gallery.Album{OwnerID: userID, Name: name, Description: description}
	if err := s.albums.Save(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Get returns the album if the principal owns it.
func (s *AlbumService) Get(ctx context.Context, principal gallery.Principal, albumID int64) (*gallery.Album, error) {
	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.access.CanAccessAlbum(ctx, principal, albumID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, contracts.ErrForbidden
	}
	return album, nil
}

// ListByOwner returns the principal's albums.
func (s *AlbumService) ListByOwner(ctx context.Context, principal gallery.Principal) ([]*gallery.Album, error) {
	userID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}
	return s.albums.ListByOwner(ctx, userID)
}

// Update changes the album's name or description. Owner only.
func (s *AlbumService) Update(ctx context.Context, principal gallery.Principal, albumID int64, name, description string) (*gallery.Album, error) {
	album, err := s.Get(ctx, principal, albumID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, contracts.ErrInvalidInput
	}
	album.Name = name
	album.Description = description
	if err := s.albums.Save(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Delete removes the album and its membership links. Photos inside are
// untouched.
func (s *AlbumService) Delete(ctx context.Context, principal gallery.Principal, albumID int64) error {
	if _, err := s.Get(ctx, principal, albumID); err != nil {
		return err
	}
	return s.albums.Delete(ctx, albumID)
}

// AddPhoto links a photo into the principal's album. The principal must
// own the album and be able to read the photo.
func (s *AlbumService) AddPhoto(ctx context.Context, principal gallery.Principal, albumID, photoID int64) error {
	if _, err := s.Get(ctx, principal, albumID); err != nil {
		return err
	}
	if _, err := s.photos.GetByID(ctx, photoID); err != nil {
		return err
	}
	readable, err := s.access.CanAccessPhoto(ctx, principal, photoID)
	if err != nil {
		return err
	}
	if !readable {
		return contracts.ErrForbidden
	}
	return s.albums.AddPhoto(ctx, albumID, photoID)
}

// RemovePhoto unlinks a photo from the principal's album.
func (s *AlbumService) RemovePhoto(ctx context.Context, principal gallery.Principal, albumID, photoID int64) error {
	if _, err := s.Get(ctx, principal, albumID); err != nil {
		return err
	}
	return s.albums.RemovePhoto(ctx, albumID, photoID)
}

// ListPhotos returns the album's photos in insertion order; the first
// one doubles as the cover.
func (s *AlbumService) ListPhotos(ctx context.Context, principal gallery.Principal, albumID int64) ([]*gallery.Photo, error) {
	if _, err := s.Get(ctx, principal, albumID); err != nil {
		return nil, err
	}
	return s.albums.ListPhotos(ctx, albumID)
}
