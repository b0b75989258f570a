package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
	"fotoshare/test/mocks"
)

type photoFixture struct {
	svc      *PhotoService
	photos   *mocks.MockPhotoRepository
	albums   *mocks.MockAlbumRepository
	comments *mocks.MockCommentaryRepository
	shares   *mocks.MockShareRepository
	files    *mocks.MockFileStore
	tx       *mocks.PassthroughTxRunner
}

func newPhotoFixture() *photoFixture {
	photos := &mocks.MockPhotoRepository{}
	albums := &mocks.MockAlbumRepository{}
	comments := &mocks.MockCommentaryRepository{}
	shares := &mocks.MockShareRepository{}
	orphans := &mocks.MockOrphanFileRepository{}
	files := &mocks.MockFileStore{}
	thumbs := &mocks.MockThumbnailStore{}
	tx := &mocks.PassthroughTxRunner{}
	logger := logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "stderr"})

	access := NewAccessService(photos, albums, comments, shares)
	cascade := NewCascadeService(nil, photos, albums, shares, comments, orphans, files, thumbs, tx, logger)

	return &photoFixture{
		svc:      NewPhotoService(access, cascade, photos, files, logger),
		photos:   photos,
		albums:   albums,
		comments: comments,
		shares:   shares,
		files:    files,
		tx:       tx,
	}
}

func TestPhotoService_Get(t *testing.T) {
	private := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPrivate}

	t.Run("stranger gets forbidden, not not-found", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()

		f.photos.On("GetByID", ctx, int64(10)).Return(private, nil)
		f.shares.On("GetByPhotoAndUser", ctx, int64(10), int64(3)).Return(nil, contracts.ErrNotFound)

		_, err := f.svc.Get(ctx, gallery.UserPrincipal(3), 10)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
	})

	t.Run("missing photo reports not found", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()

		f.photos.On("GetByID", ctx, int64(999)).Return(nil, contracts.ErrNotFound)

		_, err := f.svc.Get(ctx, gallery.UserPrincipal(1), 999)
		assert.ErrorIs(t, err, contracts.ErrNotFound)
	})

	t.Run("grantee reads the photo", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()

		f.photos.On("GetByID", ctx, int64(10)).Return(private, nil)
		f.shares.On("GetByPhotoAndUser", ctx, int64(10), int64(2)).
			Return(&gallery.Share{PhotoID: 10, UserID: 2, Permission: gallery.PermissionComment}, nil)

		photo, err := f.svc.Get(ctx, gallery.UserPrincipal(2), 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), photo.ID)
	})
}

func TestPhotoService_Upload(t *testing.T) {
	t.Run("stores binary then record", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()
		body := strings.NewReader("jpeg bytes")

		f.files.On("Save", ctx, "cat.jpg", body).Return("abc123.jpg", nil)
		f.photos.On("Save", ctx, mock.AnythingOfType("*gallery.Photo")).Return(nil)

		photo, err := f.svc.Upload(ctx, gallery.UserPrincipal(1), PhotoUpload{
			Title:            "cat",
			Visibility:       gallery.VisibilityPrivate,
			ContentType:      "image/jpeg",
			OriginalFilename: "cat.jpg",
			Data:             body,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), photo.OwnerID)
		assert.Equal(t, "abc123.jpg", photo.StoredFilename)
	})

	t.Run("failed record insert removes the binary", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()
		body := strings.NewReader("jpeg bytes")
		boom := errors.New("insert failed")

		f.files.On("Save", ctx, "cat.jpg", body).Return("abc123.jpg", nil)
		f.photos.On("Save", ctx, mock.AnythingOfType("*gallery.Photo")).Return(boom)
		f.files.On("Delete", ctx, "abc123.jpg").Return(nil)

		_, err := f.svc.Upload(ctx, gallery.UserPrincipal(1), PhotoUpload{
			OriginalFilename: "cat.jpg",
			Data:             body,
		})
		assert.ErrorIs(t, err, boom)
		f.files.AssertCalled(t, "Delete", ctx, "abc123.jpg")
	})

	t.Run("anonymous may not upload", func(t *testing.T) {
		f := newPhotoFixture()

		_, err := f.svc.Upload(context.Background(), gallery.Anonymous(), PhotoUpload{
			OriginalFilename: "cat.jpg",
			Data:             strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		f.files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing filename or body is invalid", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()

		_, err := f.svc.Upload(ctx, gallery.UserPrincipal(1), PhotoUpload{Data: strings.NewReader("x")})
		assert.ErrorIs(t, err, contracts.ErrInvalidInput)

		_, err = f.svc.Upload(ctx, gallery.UserPrincipal(1), PhotoUpload{OriginalFilename: "cat.jpg"})
		assert.ErrorIs(t, err, contracts.ErrInvalidInput)
	})
}

func TestPhotoService_Update(t *testing.T) {
	t.Run("admin grantee edits metadata", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()
		photo := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPrivate, Title: "old"}

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		f.shares.On("GetByPhotoAndUser", ctx, int64(10), int64(2)).
			Return(&gallery.Share{PhotoID: 10, UserID: 2, Permission: gallery.PermissionAdmin}, nil)
		f.photos.On("Save", ctx, photo).Return(nil)

		title := "new"
		visibility := gallery.VisibilityPublic
		updated, err := f.svc.Update(ctx, gallery.UserPrincipal(2), 10, PhotoUpdate{Title: &title, Visibility: &visibility})
		assert.NoError(t, err)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, gallery.VisibilityPublic, updated.Visibility)
	})

	t.Run("comment grantee may not edit", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()
		photo := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPrivate}

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		f.shares.On("GetByPhotoAndUser", ctx, int64(10), int64(2)).
			Return(&gallery.Share{PhotoID: 10, UserID: 2, Permission: gallery.PermissionComment}, nil)

		title := "new"
		_, err := f.svc.Update(ctx, gallery.UserPrincipal(2), 10, PhotoUpdate{Title: &title})
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		f.photos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPhotoService_Delete(t *testing.T) {
	photo := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPrivate}

	t.Run("admin grantee may not delete", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)

		err := f.svc.Delete(ctx, gallery.UserPrincipal(2), 10)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		assert.Zero(t, f.tx.Calls, "no cascade transaction should start")
	})

	t.Run("owner delete reaches the cascade", func(t *testing.T) {
		f := newPhotoFixture()
		ctx := context.Background()
		p := &gallery.Photo{ID: 10, OwnerID: 1, Visibility: gallery.VisibilityPrivate}

		f.photos.On("GetByID", ctx, int64(10)).Return(p, nil)
		f.photos.On("Delete", ctx, int64(10)).Return(nil)
		// Cascade dependents for a photo with no stored binaries.
		f.comments.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.albums.On("RemovePhotoEverywhere", ctx, int64(10)).Return(nil)

		err := f.svc.Delete(ctx, gallery.UserPrincipal(1), 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, f.tx.Calls)
	})
}
