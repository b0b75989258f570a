package application

import (
	"context"
	"errors"
	"fmt"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
)

// ShareService manages grants on photos. Only the photo's owner may
// grant, list or revoke; recipients are addressed by username because
// that is what the owner knows.
type ShareService struct {
	photos contracts.PhotoRepository
	users  contracts.UserRepository
	shares contracts.ShareRepository
	logger *logging.Logger
}

// NewShareService creates the share service.
func NewShareService(
	photos contracts.PhotoRepository,
	users contracts.UserRepository,
	shares contracts.ShareRepository,
	logger *logging.Logger,
) *ShareService {
	return &ShareService{
		photos: photos,
		users:  users,
		shares: shares,
		logger: logger.WithComponent("share"),
	}
}

// SharePhotoByUsername grants permission on a photo to the named user.
// The requester must own the photo. Granting to the owner is rejected
// with contracts.ErrSelfShare: ownership already exceeds any grant.
// Granting to a user who already holds a share replaces the level, so
// one grant per (photo, user) pair holds.
func (s *ShareService) SharePhotoByUsername(ctx context.Context, principal gallery.Principal, photoID int64, username string, permission gallery.Permission) (*gallery.Share, error) {
	requesterID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if !photo.IsOwnedBy(requesterID) {
		return nil, contracts.ErrForbidden
	}

	target, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, contracts.ErrNotFound) {
			return nil, fmt.Errorf("recipient %q: %w", username, contracts.ErrNotFound)
		}
		return nil, err
	}
	if target.ID == photo.OwnerID {
		return nil, contracts.ErrSelfShare
	}

	share, err := s.shares.GetByPhotoAndUser(ctx, photoID, target.ID)
	switch {
	case err == nil:
		share.Permission = permission
	case errors.Is(err, contracts.ErrNotFound):
		share = &gallery.Share{PhotoID: photoID, UserID: target.ID, Permission: permission}
	default:
		return nil, err
	}

	if err := s.shares.Save(ctx, share); err != nil {
		return nil, err
	}

	s.logger.Info("Share granted",
		"photo_id", photoID, "user_id", target.ID, "permission", permission.String())
	return share, nil
}

// RevokeShare removes the grant for (photoID, userID). The requester
// must own the photo. Revoking a grant that does not exist is a no-op:
// the registry ends in the same state either way.
func (s *ShareService) RevokeShare(ctx context.Context, principal gallery.Principal, photoID, userID int64) error {
	requesterID, ok := principal.UserID()
	if !ok {
		return contracts.ErrForbidden
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if !photo.IsOwnedBy(requesterID) {
		return contracts.ErrForbidden
	}

	if err := s.shares.DeleteByPhotoAndUser(ctx, photoID, userID); err != nil {
		return err
	}
	s.logger.Info("Share revoked", "photo_id", photoID, "user_id", userID)
	return nil
}

// ListShares returns every grant on the photo. Owner only.
func (s *ShareService) ListShares(ctx context.Context, principal gallery.Principal, photoID int64) ([]*gallery.Share, error) {
	requesterID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if !photo.IsOwnedBy(requesterID) {
		return nil, contracts.ErrForbidden
	}

	return s.shares.ListByPhoto(ctx, photoID)
}
