package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
	"fotoshare/test/mocks"
)

func newShareFixture() (*ShareService, *mocks.MockPhotoRepository, *mocks.MockUserRepository, *mocks.MockShareRepository) {
	photos := &mocks.MockPhotoRepository{}
	users := &mocks.MockUserRepository{}
	shares := &mocks.MockShareRepository{}
	logger := logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "stderr"})
	return NewShareService(photos, users, shares, logger), photos, users, shares
}

func TestShareService_SharePhotoByUsername(t *testing.T) {
	photo := &gallery.Photo{ID: 10, OwnerID: 1}
	recipient := &gallery.User{ID: 2, Username: "ben"}

	t.Run("grants a new share", func(t *testing.T) {
		svc, photos, users, shares := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		users.On("GetByUsername", ctx, "ben").Return(recipient, nil)
		shares.On("GetByPhotoAndUser", ctx, int64(10), int64(2)).Return(nil, contracts.ErrNotFound)
		shares.On("Save", ctx, mock.AnythingOfType("*gallery.Share")).Return(nil)

		share, err := svc.SharePhotoByUsername(ctx, gallery.UserPrincipal(1), 10, "ben", gallery.PermissionComment)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), share.PhotoID)
		assert.Equal(t, int64(2), share.UserID)
		assert.Equal(t, gallery.PermissionComment, share.Permission)
	})

	t.Run("replaces the level of an existing share", func(t *testing.T) {
		svc, photos, users, shares := newShareFixture()
		ctx := context.Background()
		existing := &gallery.Share{ID: 100, PhotoID: 10, UserID: 2, Permission: gallery.PermissionComment}

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		users.On("GetByUsername", ctx, "ben").Return(recipient, nil)
		shares.On("GetByPhotoAndUser", ctx, int64(10), int64(2)).Return(existing, nil)
		shares.On("Save", ctx, existing).Return(nil)

		share, err := svc.SharePhotoByUsername(ctx, gallery.UserPrincipal(1), 10, "ben", gallery.PermissionAdmin)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), share.ID, "existing grant is updated, not duplicated")
		assert.Equal(t, gallery.PermissionAdmin, share.Permission)
	})

	t.Run("rejects sharing with the owner", func(t *testing.T) {
		svc, photos, users, shares := newShareFixture()
		ctx := context.Background()
		owner := &gallery.User{ID: 1, Username: "ana"}

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		users.On("GetByUsername", ctx, "ana").Return(owner, nil)

		_, err := svc.SharePhotoByUsername(ctx, gallery.UserPrincipal(1), 10, "ana", gallery.PermissionAdmin)
		assert.ErrorIs(t, err, contracts.ErrSelfShare)
		shares.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("only the owner may grant", func(t *testing.T) {
		svc, photos, _, shares := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)

		_, err := svc.SharePhotoByUsername(ctx, gallery.UserPrincipal(2), 10, "ben", gallery.PermissionComment)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		shares.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("anonymous may not grant", func(t *testing.T) {
		svc, _, _, _ := newShareFixture()

		_, err := svc.SharePhotoByUsername(context.Background(), gallery.Anonymous(), 10, "ben", gallery.PermissionComment)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		svc, photos, users, _ := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		users.On("GetByUsername", ctx, "ghost").Return(nil, contracts.ErrNotFound)

		_, err := svc.SharePhotoByUsername(ctx, gallery.UserPrincipal(1), 10, "ghost", gallery.PermissionComment)
		assert.ErrorIs(t, err, contracts.ErrNotFound)
	})
}

func TestShareService_RevokeShare(t *testing.T) {
	photo := &gallery.Photo{ID: 10, OwnerID: 1}

	t.Run("revoke is idempotent", func(t *testing.T) {
		svc, photos, _, shares := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		shares.On("DeleteByPhotoAndUser", ctx, int64(10), int64(2)).Return(nil)

		// Deleting an absent grant reports success too; the registry ends
		// in the same state either way.
		assert.NoError(t, svc.RevokeShare(ctx, gallery.UserPrincipal(1), 10, 2))
		assert.NoError(t, svc.RevokeShare(ctx, gallery.UserPrincipal(1), 10, 2))
		shares.AssertNumberOfCalls(t, "DeleteByPhotoAndUser", 2)
	})

	t.Run("only the owner may revoke", func(t *testing.T) {
		svc, photos, _, shares := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)

		err := svc.RevokeShare(ctx, gallery.UserPrincipal(2), 10, 2)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		shares.AssertNotCalled(t, "DeleteByPhotoAndUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestShareService_ListShares(t *testing.T) {
	photo := &gallery.Photo{ID: 10, OwnerID: 1}
	grants := []*gallery.Share{
		{ID: 100, PhotoID: 10, UserID: 2, Permission: gallery.PermissionComment},
		{ID: 101, PhotoID: 10, UserID: 3, Permission: gallery.PermissionAdmin},
	}

	t.Run("owner sees the registry", func(t *testing.T) {
		svc, photos, _, shares := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		shares.On("ListByPhoto", ctx, int64(10)).Return(grants, nil)

		got, err := svc.ListShares(ctx, gallery.UserPrincipal(1), 10)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("a grantee may not list grants", func(t *testing.T) {
		svc, photos, _, _ := newShareFixture()
		ctx := context.Background()

		photos.On("GetByID", ctx, int64(10)).Return(photo, nil)

		_, err := svc.ListShares(ctx, gallery.UserPrincipal(2), 10)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
	})
}
