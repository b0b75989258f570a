package application

import (
	"context"
	"errors"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// AccessService is the permission resolver. Given a resource and a
// principal it answers capability queries by combining ownership, photo
// visibility and the share registry. It is stateless and re-reads
// current data on every call: a grant or revoke committed between two
// checks is visible to the second one.
//
// Every query is a pure read. An absent resource resolves to a denial,
// never an error; callers that need to distinguish "not found" from
// "forbidden" do a separate existence check.
type AccessService struct {
	photos   contracts.PhotoRepository
	albums   contracts.AlbumRepository
	comments contracts.CommentaryRepository
	shares   contracts.ShareRepository
}

// NewAccessService creates the permission resolver.
func NewAccessService(
	photos contracts.PhotoRepository,
	albums contracts.AlbumRepository,
	comments contracts.CommentaryRepository,
	shares contracts.ShareRepository,
) *AccessService {
	return &AccessService{
		photos:   photos,
		albums:   albums,
		comments: comments,
		shares:   shares,
	}
}

// CanAccessPhoto reports whether the principal may view the photo and
// its stored binary. PUBLIC photos are readable by anyone, anonymous
// included. PRIVATE photos require ownership or a share at any level.
func (s *AccessService) CanAccessPhoto(ctx context.Context, principal gallery.Principal, photoID int64) (bool, error) {
	photo, err := s.photos.GetByID(ctx, photoID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if photo.IsPublic() {
		return true, nil
	}

	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}
	if photo.IsOwnedBy(userID) {
		return true, nil
	}

	return s.hasShare(ctx, photoID, userID)
}

// CanEditPhoto reports whether the principal may change the photo's
// metadata or visibility: the owner, or a share at ADMIN.
func (s *AccessService) CanEditPhoto(ctx context.Context, principal gallery.Principal, photoID int64) (bool, error) {
	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if photo.IsOwnedBy(userID) {
		return true, nil
	}

	share, err := s.shares.GetByPhotoAndUser(ctx, photoID, userID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return share.AllowsEdit(), nil
}

// CanDeletePhoto reports whether the principal may delete the photo.
// Deletion is owner-exclusive; no share level grants it.
func (s *AccessService) CanDeletePhoto(ctx context.Context, principal gallery.Principal, photoID int64) (bool, error) {
	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return photo.IsOwnedBy(userID), nil
}

// CanCommentOnPhoto reports whether the principal may comment: the
// owner, or a share at COMMENT or ADMIN. Commenting always requires
// authentication, PUBLIC visibility notwithstanding.
func (s *AccessService) CanCommentOnPhoto(ctx context.Context, principal gallery.Principal, photoID int64) (bool, error) {
	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if photo.IsOwnedBy(userID) {
		return true, nil
	}

	share, err := s.shares.GetByPhotoAndUser(ctx, photoID, userID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return share.AllowsComment(), nil
}

// CanEditComment reports whether the principal may change the comment
// text: the author only. Owning the photo does not grant edit rights
// over someone else's words.
func (s *AccessService) CanEditComment(ctx context.Context, principal gallery.Principal, commentID int64) (bool, error) {
	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return comment.IsAuthoredBy(userID), nil
}

// CanDeleteComment reports whether the principal may remove the
// comment: its author, or the owner of the photo it is attached to
// (moderation).
func (s *AccessService) CanDeleteComment(ctx context.Context, principal gallery.Principal, commentID int64) (bool, error) {
	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if comment.IsAuthoredBy(userID) {
		return true, nil
	}

	photo, err := s.photos.GetByID(ctx, comment.PhotoID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return photo.IsOwnedBy(userID), nil
}

// CanAccessAlbum reports whether the principal may view the album.
// Albums have no sharing primitive; every album check is strict
// ownership.
func (s *AccessService) CanAccessAlbum(ctx context.Context, principal gallery.Principal, albumID int64) (bool, error) {
	userID, ok := principal.UserID()
	if !ok {
		return false, nil
	}

	album, err := s.albums.GetByID(ctx, albumID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return album.IsOwnedBy(userID), nil
}

// CanEditAlbum reports whether the principal may change the album.
func (s *AccessService) CanEditAlbum(ctx context.Context, principal gallery.Principal, albumID int64) (bool, error) {
	return s.CanAccessAlbum(ctx, principal, albumID)
}

// CanDeleteAlbum reports whether the principal may delete the album.
func (s *AccessService) CanDeleteAlbum(ctx context.Context, principal gallery.Principal, albumID int64) (bool, error) {
	return s.CanAccessAlbum(ctx, principal, albumID)
}

// CanSharePhoto reports whether the principal may grant or revoke
// shares on the photo: the owner only.
func (s *AccessService) CanSharePhoto(ctx context.Context, principal gallery.Principal, photoID int64) (bool, error) {
	return s.CanDeletePhoto(ctx, principal, photoID)
}

// IsPhotoOwner reports strict photo ownership.
func (s *AccessService) IsPhotoOwner(ctx context.Context, principal gallery.Principal, photoID int64) (bool, error) {
	return s.CanDeletePhoto(ctx, principal, photoID)
}

// IsAlbumOwner reports strict album ownership.
func (s *AccessService) IsAlbumOwner(ctx context.Context, principal gallery.Principal, albumID int64) (bool, error) {
	return s.CanAccessAlbum(ctx, principal, albumID)
}

// EffectivePermission computes the highest level the principal holds on
// the photo: owner above ADMIN, then the share level if a grant exists,
// then VIEW for a public photo, then nothing. An absent photo yields
// LevelNone.
func (s *AccessService) EffectivePermission(ctx context.Context, principal gallery.Principal, photoID int64) (gallery.EffectiveLevel, error) {
	photo, err := s.photos.GetByID(ctx, photoID)
	if errors.Is(err, contracts.ErrNotFound) {
		return gallery.LevelNone, nil
	}
	if err != nil {
		return gallery.LevelNone, err
	}

	userID, ok := principal.UserID()
	if !ok {
		if photo.IsPublic() {
			return gallery.LevelView, nil
		}
		return gallery.LevelNone, nil
	}

	if photo.IsOwnedBy(userID) {
		return gallery.LevelOwner, nil
	}

	share, err := s.shares.GetByPhotoAndUser(ctx, photoID, userID)
	if err == nil {
		return share.Effective(), nil
	}
	if !errors.Is(err, contracts.ErrNotFound) {
		return gallery.LevelNone, err
	}

	if photo.IsPublic() {
		return gallery.LevelView, nil
	}
	return gallery.LevelNone, nil
}

func (s *AccessService) hasShare(ctx context.Context, photoID, userID int64) (bool, error) {
	_, err := s.shares.GetByPhotoAndUser(ctx, photoID, userID)
	if errors.Is(err, contracts.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
