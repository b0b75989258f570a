package application

import (
	"context"
	"strings"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// CommentService manages commentaries on photos. Capability decisions
// are delegated to the resolver; this service only adds input checks
// and the writes themselves.
type CommentService struct {
	access   *AccessService
	comments contracts.CommentaryRepository
}

// NewCommentService creates the comment service.
func NewCommentService(access *AccessService, comments contracts.CommentaryRepository) *CommentService {
	return &CommentService{access: access, comments: comments}
}

// AddComment creates a comment by the principal on the photo. Requires
// at least COMMENT permission on the photo.
func (s *CommentService) AddComment(ctx context.Context, principal gallery.Principal, photoID int64, text string) (*gallery.Commentary, error) {
	userID, ok := principal.UserID()
	if !ok {
		return nil, contracts.ErrForbidden
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, contracts.ErrInvalidInput
	}

	allowed, err := s.access.CanCommentOnPhoto(ctx, principal, photoID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, contracts.ErrForbidden
	}

	comment := &gallery.Commentary{PhotoID: photoID, AuthorID: userID, Text: text}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment replaces the comment text. Author only.
func (s *CommentService) UpdateComment(ctx context.Context, principal gallery.Principal, commentID int64, text string) (*gallery.Commentary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, contracts.ErrInvalidInput
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.access.CanEditComment(ctx, principal, commentID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, contracts.ErrForbidden
	}

	comment.Text = text
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment. Allowed for its author and for the
// owner of the photo it is attached to.
func (s *CommentService) DeleteComment(ctx context.Context, principal gallery.Principal, commentID int64) error {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return err
	}

	allowed, err := s.access.CanDeleteComment(ctx, principal, commentID)
	if err != nil {
		return err
	}
	if !allowed {
		return contracts.ErrForbidden
	}

	return s.comments.Delete(ctx, commentID)
}

// ListForPhoto returns the photo's comments, oldest first. Requires
// read access to the photo.
func (s *CommentService) ListForPhoto(ctx context.Context, principal gallery.Principal, photoID int64) ([]*gallery.Commentary, error) {
	allowed, err := s.access.CanAccessPhoto(ctx, principal, photoID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, contracts.ErrForbidden
	}
	return s.comments.ListByPhoto(ctx, photoID)
}
