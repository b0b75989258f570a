package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/test/mocks"
)

func newCommentFixture() (*CommentService, *mocks.MockPhotoRepository, *mocks.MockCommentaryRepository, *mocks.MockShareRepository) {
	photos := &mocks.MockPhotoRepository{}
	albums := &mocks.MockAlbumRepository{}
	comments := &mocks.MockCommentaryRepository{}
	shares := &mocks.MockShareRepository{}
	access := NewAccessService(photos, albums, comments, shares)
	return NewCommentService(access, comments), photos, comments, shares
}

func TestCommentService_AddComment(t *testing.T) {
	photo := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPrivate}

	t.Run("grantee at comment level may post", func(t *testing.T) {
		svc, photos, comments, shares := newCommentFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		shares.On("GetByPhotoAndUser", ctx, int64(10), int64(2)).
			Return(&gallery.Share{PhotoID: 10, UserID: 2, Permission: gallery.PermissionComment}, nil)
		comments.On("Save", ctx, mock.AnythingOfType("*gallery.Commentary")).Return(nil)

		comment, err := svc.AddComment(ctx, gallery.UserPrincipal(2), 10, "  lovely shot  ")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), comment.AuthorID)
		assert.Equal(t, "lovely shot", comment.Text)
	})

	t.Run("public visibility does not grant commenting", func(t *testing.T) {
		svc, photos, comments, shares := newCommentFixture()
		ctx := context.Background()
		public := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPublic}

		photos.On("GetByID", ctx, int64(10)).Return(public, nil)
		shares.On("GetByPhotoAndUser", ctx, int64(10), int64(3)).Return(nil, contracts.ErrNotFound)

		_, err := svc.AddComment(ctx, gallery.UserPrincipal(3), 10, "hi")
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		comments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("anonymous may never comment", func(t *testing.T) {
		svc, _, comments, _ := newCommentFixture()

		_, err := svc.AddComment(context.Background(), gallery.Anonymous(), 10, "hi")
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		comments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		svc, _, _, _ := newCommentFixture()

		_, err := svc.AddComment(context.Background(), gallery.UserPrincipal(2), 10, "   ")
		assert.ErrorIs(t, err, contracts.ErrInvalidInput)
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	comment := func() *gallery.Commentary {
		return &gallery.Commentary{ID: 50, PhotoID: 10, AuthorID: 2, Text: "original"}
	}

	t.Run("author edits own comment", func(t *testing.T) {
		svc, _, comments, _ := newCommentFixture()
		ctx := context.Background()
		c := comment()

		comments.On("GetByID", ctx, int64(50)).Return(c, nil)
		comments.On("Save", ctx, c).Return(nil)

		updated, err := svc.UpdateComment(ctx, gallery.UserPrincipal(2), 50, "edited")
		assert.NoError(t, err)
		assert.Equal(t, "edited", updated.Text)
	})

	t.Run("photo owner may not edit someone else's comment", func(t *testing.T) {
		svc, _, comments, _ := newCommentFixture()
		ctx := context.Background()

		comments.On("GetByID", ctx, int64(50)).Return(comment(), nil)

		_, err := svc.UpdateComment(ctx, gallery.UserPrincipal(1), 50, "edited")
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		comments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	comment := &gallery.Commentary{ID: 50, PhotoID: 10, AuthorID: 2, Text: "original"}
	photo := &gallery.Photo{ID: 10, OwnerID: 1}

	t.Run("photo owner moderates", func(t *testing.T) {
		svc, photos, comments, _ := newCommentFixture()
		ctx := context.Background()

		comments.On("GetByID", ctx, int64(50)).Return(comment, nil)
		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		comments.On("Delete", ctx, int64(50)).Return(nil)

		assert.NoError(t, svc.DeleteComment(ctx, gallery.UserPrincipal(1), 50))
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		svc, _, comments, _ := newCommentFixture()
		ctx := context.Background()

		comments.On("GetByID", ctx, int64(50)).Return(comment, nil)
		comments.On("Delete", ctx, int64(50)).Return(nil)

		assert.NoError(t, svc.DeleteComment(ctx, gallery.UserPrincipal(2), 50))
	})

	t.Run("stranger may not delete", func(t *testing.T) {
		svc, photos, comments, _ := newCommentFixture()
		ctx := context.Background()

		comments.On("GetByID", ctx, int64(50)).Return(comment, nil)
		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)

		err := svc.DeleteComment(ctx, gallery.UserPrincipal(3), 50)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing comment", func(t *testing.T) {
		svc, _, comments, _ := newCommentFixture()
		ctx := context.Background()

		comments.On("GetByID", ctx, int64(999)).Return(nil, contracts.ErrNotFound)

		err := svc.DeleteComment(ctx, gallery.UserPrincipal(2), 999)
		assert.ErrorIs(t, err, contracts.ErrNotFound)
	})
}
